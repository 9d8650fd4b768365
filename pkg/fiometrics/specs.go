package fiometrics

import "strconv"

const (
	// ParamRW is the output name for the job access mode
	ParamRW = "rw"
	// ParamFilesizeKB is the output name for the file size in kilobytes
	ParamFilesizeKB = "filesize_kb"
	// ParamNumThreads is the output name for the thread count
	ParamNumThreads = "num_threads"
	// MetricIOPS is the output name for IO operations per second
	MetricIOPS = "iops"
	// MetricBWBytes is the output name for bandwidth in bytes/sec
	MetricBWBytes = "bw_bytes"
	// MetricIOBytes is the output name for total IO in bytes
	MetricIOBytes = "io_bytes"
	// MetricLatMin is the output name for minimum latency in seconds
	MetricLatMin = "lat_s_min"
	// MetricLatMax is the output name for maximum latency in seconds
	MetricLatMax = "lat_s_max"
	// MetricLatMean is the output name for mean latency in seconds
	MetricLatMean = "lat_s_mean"
	// ReadMode is the canonical read mode and result block key
	ReadMode = "read"
	// WriteMode is the canonical write mode and result block key
	WriteMode = "write"
	// RampTimeKey is the ramp_time key in fio option blocks
	RampTimeKey = "ramp_time"
	// RuntimeKey is the runtime key in fio result blocks
	RuntimeKey = "runtime"
	// DefaultWorksheet is the worksheet rows are appended to
	DefaultWorksheet = "fio_metrics!"
)

// nsToSec scales fio's nanosecond latencies to seconds.
const nsToSec = 1e-9

// JobParam describes one tracked job option: the output column name, the
// key inside the "global options"/"job options" blocks, a formatter
// normalizing the raw string and the value used when the key is absent.
type JobParam struct {
	Name     string
	JSONName string
	Format   func(string) (interface{}, error)
	Default  interface{}
}

// JobMetric describes one tracked metric: the output column name, the key
// path inside a job's read/write result block and the factor scaling the
// leaf value to the output unit.
type JobMetric struct {
	Name       string
	Levels     []string
	Conversion float64
}

// ReqJobParams lists the job options pulled into every record. Slice order
// defines the column order of the emitted rows.
var ReqJobParams = []JobParam{
	{
		Name:     ParamRW,
		JSONName: "rw",
		Format:   func(v string) (interface{}, error) { return v, nil },
		Default:  ReadMode,
	},
	{
		Name:     ParamFilesizeKB,
		JSONName: "filesize",
		Format: func(v string) (interface{}, error) {
			return convertValue(v, FilesizeConversion, "")
		},
		Default: int64(0),
	},
	{
		Name:     ParamNumThreads,
		JSONName: "numjobs",
		Format: func(v string) (interface{}, error) {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return nil, err
			}
			return n, nil
		},
		Default: int64(1),
	},
}

// ReqJobMetrics lists the metrics pulled from every job's result block.
// Slice order defines the column order of the emitted rows. The percentile
// keys use fio's fractional label notation.
var ReqJobMetrics = []JobMetric{
	{Name: MetricIOPS, Levels: []string{"iops"}, Conversion: 1},
	{Name: MetricBWBytes, Levels: []string{"bw_bytes"}, Conversion: 1},
	{Name: MetricIOBytes, Levels: []string{"io_bytes"}, Conversion: 1},
	{Name: MetricLatMin, Levels: []string{"lat_ns", "min"}, Conversion: nsToSec},
	{Name: MetricLatMax, Levels: []string{"lat_ns", "max"}, Conversion: nsToSec},
	{Name: MetricLatMean, Levels: []string{"lat_ns", "mean"}, Conversion: nsToSec},
	{Name: "lat_s_perc_20", Levels: []string{"lat_ns", "percentile", "20.000000"}, Conversion: nsToSec},
	{Name: "lat_s_perc_50", Levels: []string{"lat_ns", "percentile", "50.000000"}, Conversion: nsToSec},
	{Name: "lat_s_perc_90", Levels: []string{"lat_ns", "percentile", "90.000000"}, Conversion: nsToSec},
	{Name: "lat_s_perc_95", Levels: []string{"lat_ns", "percentile", "95.000000"}, Conversion: nsToSec},
}
