package fiometrics

import (
	. "gopkg.in/check.v1"
)

type ConvertTestSuite struct{}

var _ = Suite(&ConvertTestSuite{})

func (s *ConvertTestSuite) TestConvertValue(c *C) {
	for _, tc := range []struct {
		value       string
		conversion  map[string]float64
		defaultUnit string
		expected    int64
		errChecker  Checker
	}{
		{
			value:      "50M",
			conversion: FilesizeConversion,
			expected:   50000,
			errChecker: IsNil,
		},
		{
			value:      "2gb",
			conversion: FilesizeConversion,
			expected:   2000000,
			errChecker: IsNil,
		},
		{
			value:      "1024k",
			conversion: FilesizeConversion,
			expected:   1024,
			errChecker: IsNil,
		},
		{
			value:      "5s",
			conversion: RamptimeConversion,
			expected:   5000,
			errChecker: IsNil,
		},
		{ // unit-less value uses the default unit
			value:       "5",
			conversion:  RamptimeConversion,
			defaultUnit: "s",
			expected:    5000,
			errChecker:  IsNil,
		},
		{
			value:      "2m",
			conversion: RamptimeConversion,
			expected:   120000,
			errChecker: IsNil,
		},
		{ // unknown unit
			value:      "5q",
			conversion: RamptimeConversion,
			errChecker: NotNil,
		},
		{ // no default unit supplied and none in the value
			value:      "5",
			conversion: RamptimeConversion,
			errChecker: NotNil,
		},
		{ // no numerical part
			value:      "abc",
			conversion: RamptimeConversion,
			errChecker: NotNil,
		},
		{
			value:      "",
			conversion: RamptimeConversion,
			errChecker: NotNil,
		},
	} {
		got, err := convertValue(tc.value, tc.conversion, tc.defaultUnit)
		c.Check(err, tc.errChecker, Commentf("value: %s", tc.value))
		if err == nil {
			c.Check(got, Equals, tc.expected, Commentf("value: %s", tc.value))
		}
	}
}

func (s *ConvertTestSuite) TestNormalizeRW(c *C) {
	for _, tc := range []struct {
		rw         string
		expected   string
		errChecker Checker
	}{
		{rw: "read", expected: ReadMode, errChecker: IsNil},
		{rw: "randread", expected: ReadMode, errChecker: IsNil},
		{rw: "write", expected: WriteMode, errChecker: IsNil},
		{rw: "randwrite", expected: WriteMode, errChecker: IsNil},
		{rw: "trim", errChecker: NotNil},
		{rw: "readwrite", errChecker: NotNil},
		{rw: "", errChecker: NotNil},
	} {
		got, err := normalizeRW(tc.rw)
		c.Check(err, tc.errChecker, Commentf("rw: %s", tc.rw))
		c.Check(got, Equals, tc.expected)
	}
}
