// mailsift-lint validates a ruleset file offline. It makes no remote
// calls, so typos can be caught before a run silently matches nothing.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mailsift/mailsift/internal/rules"
	"github.com/mailsift/mailsift/internal/runtime"
)

type lintConfig struct {
	rulesPath string
	failOn    string
}

func main() {
	cfg := parseLintFlags()
	if err := run(cfg); err != nil {
		runtime.DefaultLogger().Error("mailsift-lint failed", "error", err)
		os.Exit(1)
	}
}

func parseLintFlags() lintConfig {
	rulesPath := flag.String("rules", "email_rules.json", "ruleset file to validate")
	failOn := flag.String("fail-on", "fail", "exit non-zero at this finding severity: warn or fail")
	flag.Parse()

	return lintConfig{rulesPath: *rulesPath, failOn: *failOn}
}

func run(cfg lintConfig) error {
	rs, err := rules.Load(cfg.rulesPath)
	if err != nil {
		return err
	}

	findings := rules.Validate(rs)
	for _, finding := range findings {
		fmt.Println(finding)
	}
	if len(findings) == 0 {
		fmt.Println("no findings")
		return nil
	}
	if shouldFail(findings, cfg.failOn) {
		return fmt.Errorf("%d finding(s) at or above -fail-on=%s", len(findings), cfg.failOn)
	}
	return nil
}

func shouldFail(findings []rules.Finding, failOn string) bool {
	if failOn == string(rules.SeverityWarn) {
		return true
	}
	for _, finding := range findings {
		if finding.Severity == rules.SeverityFail {
			return true
		}
	}
	return false
}
