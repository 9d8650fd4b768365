package fiometrics

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// FilesizeConversion normalizes fio size strings to kilobytes.
var FilesizeConversion = map[string]float64{
	"b":  0.001,
	"k":  1,
	"kb": 1,
	"m":  1e3,
	"mb": 1e3,
	"g":  1e6,
	"gb": 1e6,
	"t":  1e9,
	"tb": 1e9,
	"p":  1e12,
	"pb": 1e12,
}

// RamptimeConversion normalizes fio time strings to milliseconds.
var RamptimeConversion = map[string]float64{
	"us": 0.001,
	"ms": 1,
	"s":  1000,
	"m":  60 * 1000,
	"h":  3600 * 1000,
	"d":  24 * 3600 * 1000,
}

// numUnitRegexp splits values like "50M" or "10s" into a digit-run and a
// letter-run.
var numUnitRegexp = regexp.MustCompile(`[0-9]+|[A-Za-z]+`)

// convertValue scales a "value[unit]" string using the given conversion
// table. A value with no unit suffix is treated as defaultUnit.
// Ex: convertValue("5s", RamptimeConversion, "s") returns 5000.
func convertValue(value string, conversion map[string]float64, defaultUnit string) (int64, error) {
	tokens := numUnitRegexp.FindAllString(value, -1)
	if len(tokens) == 0 {
		return 0, errors.Errorf("no numerical part in value (%s)", value)
	}
	unit := defaultUnit
	if len(tokens) == 2 {
		unit = tokens[1]
	}
	num, err := strconv.ParseInt(tokens[0], 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "no numerical part in value (%s)", value)
	}
	mult, ok := conversion[strings.ToLower(unit)]
	if !ok {
		return 0, errors.Errorf("unknown unit (%s) in value (%s)", unit, value)
	}
	return int64(float64(num) * mult), nil
}

// normalizeRW collapses fio's four supported access patterns to the two
// result blocks they report into. Any other mode is rejected.
func normalizeRW(rw string) (string, error) {
	switch rw {
	case "read", "randread":
		return ReadMode, nil
	case "write", "randwrite":
		return WriteMode, nil
	}
	return "", errors.Errorf("unsupported rw value (%s), only read/randread/write/randwrite are supported", rw)
}
