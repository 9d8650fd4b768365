package fiometrics

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ErrNoData flags an input document with nothing usable in it.
var ErrNoData = errors.New("no data could be extracted")

// Sink receives one row per extracted job, columns in JobRecord.Row order.
type Sink interface {
	Append(worksheet string, rows [][]interface{}) error
}

// Extractor parses a fio JSON output file into per-job metric records and
// hands the flattened rows to a Sink.
type Extractor struct {
	Sink Sink
}

// GetMetrics loads the fio output at path, extracts one record per job
// and, when a sink is configured, appends the flattened rows to worksheet.
func (e *Extractor) GetMetrics(path, worksheet string) ([]JobRecord, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}
	records, err := e.ExtractMetrics(doc)
	if err != nil {
		return nil, err
	}
	if e.Sink != nil {
		rows := make([][]interface{}, 0, len(records))
		for _, r := range records {
			rows = append(rows, r.Row())
		}
		if err := e.Sink.Append(worksheet, rows); err != nil {
			return nil, errors.Wrapf(err, "Unable to write rows to worksheet (%s)", worksheet)
		}
	}
	return records, nil
}

// LoadDocument reads and parses a fio JSON output file.
func LoadDocument(path string) (*FioDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "File reading error")
	}
	doc := &FioDocument{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, errors.Wrap(err, "Unable to parse fio output into json.")
	}
	if doc.TimestampMS == 0 && doc.GlobalOptions == nil && len(doc.Jobs) == 0 {
		return nil, errors.Wrapf(ErrNoData, "JSON file (%s) returned empty object", path)
	}
	return doc, nil
}

// ExtractMetrics turns a fio document into one record per job. Jobs whose
// reconstructed window is empty or whose metrics are all zero are skipped;
// a missing metric key aborts the whole extraction.
func (e *Extractor) ExtractMetrics(doc *FioDocument) ([]JobRecord, error) {
	params, err := jobParams(doc)
	if err != nil {
		return nil, err
	}
	windows, err := startEndTimes(doc, params)
	if err != nil {
		return nil, err
	}
	records := make([]JobRecord, 0, len(doc.Jobs))
	for i, job := range doc.Jobs {
		rw, _ := params[i][ParamRW].(string)
		mode, err := normalizeRW(rw)
		if err != nil {
			return nil, errors.Wrapf(err, "job index %d", i)
		}
		metrics, err := jobMetrics(job.modeStats(mode))
		if err != nil {
			return nil, errors.Wrapf(err, "job index %d", i)
		}
		w := windows[i]
		if w.Start >= w.End || allZero(metrics) {
			log.Warnf("no job metrics in json, skipping job index %d", i)
			continue
		}
		records = append(records, JobRecord{
			Params:    params[i],
			StartTime: w.Start,
			EndTime:   w.End,
			Metrics:   metrics,
		})
	}
	if len(records) == 0 {
		return nil, errors.Wrap(ErrNoData, "every job was filtered out")
	}
	return records, nil
}

// jobParams builds the effective configuration of each job. Values from a
// job's own options block win over global options, per parameter. A job
// with no options block at all gets an EMPTY map, it does not inherit the
// globals. That mirrors the behavior metrics consumers already depend on.
func jobParams(doc *FioDocument) ([]map[string]interface{}, error) {
	global := make(map[string]interface{}, len(ReqJobParams))
	for _, p := range ReqJobParams {
		raw, ok := doc.GlobalOptions[p.JSONName]
		if !ok {
			global[p.Name] = p.Default
			continue
		}
		val, err := p.Format(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "Unable to format global option (%s)", p.JSONName)
		}
		global[p.Name] = val
	}

	params := make([]map[string]interface{}, 0, len(doc.Jobs))
	for i, job := range doc.Jobs {
		curr := map[string]interface{}{}
		if job.JobOptions != nil {
			for _, p := range ReqJobParams {
				raw, ok := job.JobOptions[p.JSONName]
				if !ok {
					curr[p.Name] = global[p.Name]
					continue
				}
				val, err := p.Format(raw)
				if err != nil {
					return nil, errors.Wrapf(err, "Unable to format option (%s) of job index %d", p.JSONName, i)
				}
				curr[p.Name] = val
			}
		}
		params = append(params, curr)
	}
	return params, nil
}

type timeWindow struct {
	Start int64
	End   int64
}

// startEndTimes reconstructs each job's absolute start/end time in
// seconds. Only the overall end timestamp is known, so jobs are walked
// from last to first: one job's end is the next job's start, and its start
// is that minus runtime and ramp time.
func startEndTimes(doc *FioDocument, params []map[string]interface{}) ([]timeWindow, error) {
	var globalRampMS int64
	if raw, ok := doc.GlobalOptions[RampTimeKey]; ok {
		var err error
		globalRampMS, err = convertValue(raw, RamptimeConversion, "s")
		if err != nil {
			return nil, errors.Wrap(err, "Unable to convert global ramp_time")
		}
	}

	var prevStartS int64
	windows := make([]timeWindow, len(doc.Jobs))
	for i := len(doc.Jobs) - 1; i >= 0; i-- {
		job := doc.Jobs[i]
		rw, _ := params[i][ParamRW].(string)
		mode, err := normalizeRW(rw)
		if err != nil {
			return nil, errors.Wrapf(err, "job index %d", i)
		}
		runtime, ok := job.modeStats(mode)[RuntimeKey].(float64)
		if !ok {
			return nil, errors.Errorf("no runtime in %s block of job index %d", mode, i)
		}

		var rampMS int64
		if raw, ok := job.JobOptions[RampTimeKey]; ok {
			rampMS, err = convertValue(raw, RamptimeConversion, "s")
			if err != nil {
				return nil, errors.Wrapf(err, "Unable to convert ramp_time of job index %d", i)
			}
		}
		if rampMS == 0 {
			rampMS = globalRampMS
		}

		// for multiple jobs, end time of one job = start time of the next
		endMS := doc.TimestampMS
		if prevStartS > 0 {
			endMS = prevStartS * 1000
		}
		startMS := endMS - int64(runtime) - rampMS

		startS := startMS / 1000
		endS := (endMS + 500) / 1000
		windows[i] = timeWindow{Start: startS, End: endS}
		prevStartS = startS
	}
	return windows, nil
}

// jobMetrics walks every metric spec's key path into a job's result block
// and scales the leaf value. An absent key means the output file is
// incompatible, not that the value is zero.
func jobMetrics(stats map[string]interface{}) (map[string]float64, error) {
	out := make(map[string]float64, len(ReqJobMetrics))
	for _, m := range ReqJobMetrics {
		var val interface{} = stats
		for _, level := range m.Levels {
			block, ok := val.(map[string]interface{})
			if !ok {
				return nil, errors.Errorf("required metric %s not present in json output", level)
			}
			val, ok = block[level]
			if !ok {
				return nil, errors.Errorf("required metric %s not present in json output", level)
			}
		}
		leaf, ok := val.(float64)
		if !ok {
			return nil, errors.Errorf("metric %s is not a number", m.Name)
		}
		out[m.Name] = leaf * m.Conversion
	}
	return out, nil
}

func allZero(metrics map[string]float64) bool {
	for _, v := range metrics {
		if v != 0 {
			return false
		}
	}
	return true
}
