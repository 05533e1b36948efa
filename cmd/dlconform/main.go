package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/logutils"
	"github.com/observe-l/polardl/fec"
)

var (
	testcaseArg = flag.String("testcase", "", "Testcase directory with params.txt and table files")
	suiteArg    = flag.String("suite", "", "INI suite file describing multiple testcases")
	outArg      = flag.String("out", "", "Optional markdown report path")
	isDebugArg  = flag.Bool("debug", false, "Emit debug log messages (stage vectors)")
	logDestArg  = flag.String("log", "", "Device/file for log (default stderr)")
)

func main() {
	flag.Parse()
	setupLogging()

	var cases []suiteCase
	switch {
	case *suiteArg != "":
		var err error
		cases, err = loadSuite(*suiteArg)
		if err != nil {
			log.Fatalf("[ERROR] Loading suite %s: %v", *suiteArg, err)
		}
	case *testcaseArg != "":
		cases = []suiteCase{{Name: filepath.Base(*testcaseArg), Dir: *testcaseArg}}
	default:
		flag.Usage()
		log.Fatal("[ERROR] Either -testcase or -suite is required")
	}

	results := make([]caseResult, 0, len(cases))
	failed := 0
	for _, c := range cases {
		r := runCase(c)
		results = append(results, r)
		if !r.Pass() {
			failed++
		}
	}

	if *outArg != "" {
		if err := writeReport(*outArg, results); err != nil {
			log.Fatalf("[ERROR] Writing report %s: %v", *outArg, err)
		}
	}
	if failed > 0 {
		log.Printf("[ERROR] %d of %d testcases failed", failed, len(results))
		os.Exit(1)
	}
	log.Printf("[INFO] All %d testcases passed", len(results))
}

type caseResult struct {
	Case       suiteCase
	Params     fec.DownlinkParams
	Mismatches int
	Elapsed    time.Duration
	Err        error
}

// Pass reports whether the case matched its expectation. Without an explicit
// expectation, any mismatch against the reference vector is a failure.
func (r caseResult) Pass() bool {
	if r.Err != nil {
		return false
	}
	want := 0
	if r.Case.ExpectMismatches >= 0 {
		want = r.Case.ExpectMismatches
	}
	return r.Mismatches == want
}

func runCase(c suiteCase) caseResult {
	r := caseResult{Case: c}
	start := time.Now()

	p, err := fec.LoadDownlinkParams(c.Dir)
	if err != nil {
		r.Err = err
		log.Printf("[ERROR] %s: loading params: %v", c.Name, err)
		return r
	}
	r.Params = p
	log.Printf("[INFO] %s: A=%d P=%d K=%d E=%d N=%d", c.Name, p.A, p.P, p.K, p.E, p.N)

	tables, err := fec.LoadTestcase(c.Dir, p)
	if err != nil {
		r.Err = err
		log.Printf("[ERROR] %s: loading tables: %v", c.Name, err)
		return r
	}

	res, err := fec.EncodeDownlink(p, tables)
	r.Elapsed = time.Since(start)
	if err != nil {
		r.Err = err
		log.Printf("[ERROR] %s: encoding: %v", c.Name, err)
		return r
	}
	r.Mismatches = res.Mismatches

	log.Printf("[DEBUG] %s: crcBits:      %v", c.Name, res.CrcBits)
	log.Printf("[DEBUG] %s: scrBits:      %v", c.Name, res.ScrambledCrc)
	log.Printf("[DEBUG] %s: infoCrcBits:  %v", c.Name, res.InfoCrcBits)
	log.Printf("[DEBUG] %s: intrlBits:    %v", c.Name, res.Interleaved)
	log.Printf("[DEBUG] %s: frozenBits:   %v", c.Name, res.Frozen)
	log.Printf("[DEBUG] %s: encBits:      %v", c.Name, res.Encoded)
	log.Printf("[DEBUG] %s: rmBits:       %v", c.Name, res.RateMatched)
	log.Printf("[INFO] %s: nDiffBits=%d (%v)", c.Name, res.Mismatches, r.Elapsed)
	return r
}

func setupLogging() {
	minLogLevel := "INFO"
	if *isDebugArg {
		minLogLevel = "DEBUG"
	}
	logWriter := os.Stderr
	if *logDestArg != "" {
		w, err := os.OpenFile(*logDestArg, os.O_WRONLY|os.O_CREATE|os.O_SYNC, 0644)
		if err != nil {
			log.Fatalf("Error opening log output, exiting: %v", err)
		}
		logWriter = w
	}
	filter := &logutils.LevelFilter{
		Levels:   []logutils.LogLevel{"DEBUG", "INFO", "ERROR"},
		MinLevel: logutils.LogLevel(minLogLevel),
		Writer:   logWriter,
	}
	log.SetOutput(filter)
	log.Print("[DEBUG] Debug is on")
}

func writeReport(path string, results []caseResult) error {
	s := "# Downlink Polar Encoding Conformance\n\n"
	s += "| Testcase | A | P | E | N | Mismatches | Time | Result |\n"
	s += "|---|---|---|---|---|---|---|---|\n"
	for _, r := range results {
		status := "PASS"
		if !r.Pass() {
			status = "FAIL"
		}
		if r.Err != nil {
			s += fmt.Sprintf("| %s | - | - | - | - | - | - | ERROR: %v |\n", r.Case.Name, r.Err)
			continue
		}
		s += fmt.Sprintf("| %s | %d | %d | %d | %d | %d | %v | %s |\n",
			r.Case.Name, r.Params.A, r.Params.P, r.Params.E, r.Params.N, r.Mismatches, r.Elapsed, status)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(s), 0o644)
}
