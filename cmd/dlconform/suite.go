package main

import (
	"fmt"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// suiteCase is one entry of a conformance suite: a testcase directory plus an
// optional expected mismatch count (negative means "expect exact match").
type suiteCase struct {
	Name             string
	Dir              string
	ExpectMismatches int
}

// loadSuite parses an INI suite file. Each section names one testcase:
//
//	[tc_a190_e1032]
//	dir = vectors/tc_a190_e1032
//	expect_mismatches = 0
//
// Relative dirs are resolved against the suite file's directory.
func loadSuite(path string) ([]suiteCase, error) {
	f, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	base := filepath.Dir(path)
	cases := make([]suiteCase, 0, len(f.Sections()))
	for _, sec := range f.Sections() {
		if sec.Name() == ini.DefaultSection {
			continue
		}
		dir := sec.Key("dir").String()
		if dir == "" {
			return nil, fmt.Errorf("suite section %q has no dir", sec.Name())
		}
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(base, dir)
		}
		expect := sec.Key("expect_mismatches").MustInt(-1)
		cases = append(cases, suiteCase{Name: sec.Name(), Dir: dir, ExpectMismatches: expect})
	}
	if len(cases) == 0 {
		return nil, fmt.Errorf("suite %s contains no testcases", path)
	}
	return cases, nil
}
