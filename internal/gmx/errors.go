package gmx

import "errors"

var errEmptyArgv = errors.New("gmx: empty argument vector")
