package fiometrics

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	. "gopkg.in/check.v1"
)

type fakeSink struct {
	worksheet string
	rows      [][]interface{}
	err       error
}

func (f *fakeSink) Append(worksheet string, rows [][]interface{}) error {
	f.worksheet = worksheet
	f.rows = rows
	return f.err
}

func (s *FioMetricsTestSuite) TestRowOrder(c *C) {
	record := JobRecord{
		Params: map[string]interface{}{
			ParamNumThreads: int64(10),
			ParamFilesizeKB: int64(50000),
			ParamRW:         "randread",
		},
		StartTime: 1653026994,
		EndTime:   1653027064,
		Metrics: map[string]float64{
			MetricLatMean:   0.3,
			MetricIOPS:      95.26093,
			MetricBWBytes:   99888324,
			MetricIOBytes:   6040846336,
			MetricLatMin:    0.1,
			MetricLatMax:    1.7,
			"lat_s_perc_20": 0.2,
			"lat_s_perc_50": 0.5,
			"lat_s_perc_90": 0.9,
			"lat_s_perc_95": 0.95,
		},
	}
	// columns are positional: params in spec order, start, end, metrics
	// in spec order, regardless of map iteration order
	c.Check(record.Row(), DeepEquals, []interface{}{
		"randread", int64(50000), int64(10),
		int64(1653026994), int64(1653027064),
		95.26093, float64(99888324), float64(6040846336),
		0.1, 1.7, 0.3, 0.2, 0.5, 0.9, 0.95,
	})
}

func (s *FioMetricsTestSuite) TestRowSkipsAbsentValues(c *C) {
	record := JobRecord{
		Params:    map[string]interface{}{},
		StartTime: 1,
		EndTime:   2,
		Metrics:   map[string]float64{MetricIOPS: 3},
	}
	c.Check(record.Row(), DeepEquals, []interface{}{int64(1), int64(2), float64(3)})
}

func (s *FioMetricsTestSuite) TestGetMetricsWritesRows(c *C) {
	path := filepath.Join(c.MkDir(), "fio.json")
	err := os.WriteFile(path, []byte(sampleFioOutput), 0644)
	c.Assert(err, IsNil)

	sink := &fakeSink{}
	records, err := (&Extractor{Sink: sink}).GetMetrics(path, DefaultWorksheet)
	c.Assert(err, IsNil)
	c.Assert(records, HasLen, 2)
	c.Check(sink.worksheet, Equals, DefaultWorksheet)
	c.Assert(sink.rows, HasLen, 2)
	c.Check(sink.rows[0], DeepEquals, records[0].Row())
	c.Check(sink.rows[1], DeepEquals, records[1].Row())
	// one row per surviving job, 3 params + 2 times + 10 metrics each
	c.Check(sink.rows[0], HasLen, 15)
}

func (s *FioMetricsTestSuite) TestGetMetricsSinkError(c *C) {
	path := filepath.Join(c.MkDir(), "fio.json")
	err := os.WriteFile(path, []byte(sampleFioOutput), 0644)
	c.Assert(err, IsNil)

	sink := &fakeSink{err: errors.New("append failed")}
	records, err := (&Extractor{Sink: sink}).GetMetrics(path, DefaultWorksheet)
	c.Check(records, IsNil)
	c.Check(err, ErrorMatches, ".*append failed.*")
}

func (s *FioMetricsTestSuite) TestGetMetricsNoSink(c *C) {
	path := filepath.Join(c.MkDir(), "fio.json")
	err := os.WriteFile(path, []byte(sampleFioOutput), 0644)
	c.Assert(err, IsNil)

	records, err := (&Extractor{}).GetMetrics(path, DefaultWorksheet)
	c.Assert(err, IsNil)
	c.Check(records, HasLen, 2)
}
