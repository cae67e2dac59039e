package commands

import "time"

// nowFunc is swapped in tests that pin "today".
var nowFunc = time.Now
