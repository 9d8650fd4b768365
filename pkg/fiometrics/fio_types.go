package fiometrics

import "fmt"

// FioDocument is the subset of fio's JSON output the extractor reads.
// The option blocks and per-mode result blocks stay generic maps because
// the extractor has to tell an absent key apart from a zero value.
type FioDocument struct {
	FioVersion    string            `json:"fio version,omitempty"`
	Timestamp     int64             `json:"timestamp,omitempty"`
	TimestampMS   int64             `json:"timestamp_ms,omitempty"`
	Time          string            `json:"time,omitempty"`
	GlobalOptions map[string]string `json:"global options,omitempty"`
	Jobs          []FioJob          `json:"jobs,omitempty"`
}

// FioJob is one job entry in the output document. JobOptions is nil when
// the job carries no "job options" block.
type FioJob struct {
	JobName    string                 `json:"jobname,omitempty"`
	JobOptions map[string]string      `json:"job options,omitempty"`
	Read       map[string]interface{} `json:"read,omitempty"`
	Write      map[string]interface{} `json:"write,omitempty"`
}

// modeStats returns the result block matching a normalized rw mode.
func (j FioJob) modeStats(mode string) map[string]interface{} {
	if mode == WriteMode {
		return j.Write
	}
	return j.Read
}

// JobRecord is one extracted job: its parameter values, the reconstructed
// wall-clock window and the scaled metric values.
type JobRecord struct {
	Params    map[string]interface{} `json:"params"`
	StartTime int64                  `json:"start_time"`
	EndTime   int64                  `json:"end_time"`
	Metrics   map[string]float64     `json:"metrics"`
}

// Row flattens the record in the column order the sheet expects:
// parameters in spec order, start time, end time, metrics in spec order.
func (r JobRecord) Row() []interface{} {
	row := make([]interface{}, 0, len(r.Params)+len(r.Metrics)+2)
	for _, p := range ReqJobParams {
		if v, ok := r.Params[p.Name]; ok {
			row = append(row, v)
		}
	}
	row = append(row, r.StartTime, r.EndTime)
	for _, m := range ReqJobMetrics {
		if v, ok := r.Metrics[m.Name]; ok {
			row = append(row, v)
		}
	}
	return row
}

func (r JobRecord) Print() string {
	var res string
	res += fmt.Sprintf("rw=%v filesize_kb=%v num_threads=%v\n", r.Params[ParamRW], r.Params[ParamFilesizeKB], r.Params[ParamNumThreads])
	res += fmt.Sprintf("  window: %d - %d\n", r.StartTime, r.EndTime)
	res += fmt.Sprintf("  IOPS=%f BW(B/s)=%f lat(s): min=%f max=%f mean=%f",
		r.Metrics[MetricIOPS], r.Metrics[MetricBWBytes], r.Metrics[MetricLatMin], r.Metrics[MetricLatMax], r.Metrics[MetricLatMean])
	return res
}
