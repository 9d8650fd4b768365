package fiometrics

const sampleFioOutput = `{
	"fio version" : "fio-3.20",
	"timestamp" : 1653027155,
	"timestamp_ms" : 1653027155000,
	"time" : "Fri May 20 06:12:35 2022",
	"global options" : {
	  "ioengine" : "libaio",
	  "filesize" : "50M",
	  "numjobs" : "40",
	  "ramp_time" : "10s"
	},
	"jobs" : [
	  {
		"jobname" : "seq_read",
		"groupid" : 0,
		"error" : 0,
		"job options" : {
		  "rw" : "randread",
		  "numjobs" : "10"
		},
		"read" : {
		  "io_bytes" : 6040846336,
		  "io_kbytes" : 5899264,
		  "bw_bytes" : 99888324,
		  "bw" : 97547,
		  "iops" : 95.26093,
		  "runtime" : 60000,
		  "total_ios" : 5766,
		  "short_ios" : 0,
		  "drop_ios" : 0,
		  "lat_ns" : {
			"min" : 353377760,
			"max" : 1697519869,
			"mean" : 417754876.77469,
			"stddev" : 59345417.42094,
			"percentile" : {
			  "20.000000" : 379584512,
			  "50.000000" : 387973120,
			  "90.000000" : 492830720,
			  "95.000000" : 526385152
			}
		  }
		},
		"write" : {
		  "io_bytes" : 0,
		  "io_kbytes" : 0,
		  "bw_bytes" : 0,
		  "bw" : 0,
		  "iops" : 0.000000,
		  "runtime" : 0,
		  "total_ios" : 0,
		  "short_ios" : 0,
		  "drop_ios" : 0,
		  "lat_ns" : {
			"min" : 0,
			"max" : 0,
			"mean" : 0.000000,
			"stddev" : 0.000000,
			"percentile" : {
			  "20.000000" : 0,
			  "50.000000" : 0,
			  "90.000000" : 0,
			  "95.000000" : 0
			}
		  }
		}
	  },
	  {
		"jobname" : "seq_write",
		"groupid" : 0,
		"error" : 0,
		"job options" : {
		  "rw" : "randwrite",
		  "ramp_time" : "20s"
		},
		"read" : {
		  "io_bytes" : 0,
		  "io_kbytes" : 0,
		  "bw_bytes" : 0,
		  "bw" : 0,
		  "iops" : 0.000000,
		  "runtime" : 0,
		  "total_ios" : 0,
		  "short_ios" : 0,
		  "drop_ios" : 0,
		  "lat_ns" : {
			"min" : 0,
			"max" : 0,
			"mean" : 0.000000,
			"stddev" : 0.000000,
			"percentile" : {
			  "20.000000" : 0,
			  "50.000000" : 0,
			  "90.000000" : 0,
			  "95.000000" : 0
			}
		  }
		},
		"write" : {
		  "io_bytes" : 24805376,
		  "io_kbytes" : 24224,
		  "bw_bytes" : 1616406,
		  "bw" : 1578,
		  "iops" : 390.525218,
		  "runtime" : 71000,
		  "total_ios" : 5993,
		  "short_ios" : 0,
		  "drop_ios" : 0,
		  "lat_ns" : {
			"min" : 1063744,
			"max" : 86074963,
			"mean" : 2559847.32907,
			"stddev" : 1849825.75777,
			"percentile" : {
			  "20.000000" : 1875968,
			  "50.000000" : 2211840,
			  "90.000000" : 3293184,
			  "95.000000" : 3948544
			}
		  }
		}
	  }
	]
  }`
