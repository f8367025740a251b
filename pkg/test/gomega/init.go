package lgomega

import (
	"fmt"
	"regexp"
	"runtime/debug"
	"strings"

	"github.com/onsi/gomega"
	omegatypes "github.com/onsi/gomega/types"

	ltest "github.com/dozr-cli/dozr/pkg/test"
)

// Importing this package lets tests use the global gomega.Expect without a
// Ginkgo suite: failures panic with a pruned stack, which fails the test.
func init() {
	gomega.RegisterFailHandler(panicFailHandler())
}

// For binds gomega to a single test or property draw instead of the global
// panic handler.
func For(t ltest.T) *gomega.WithT {
	return gomega.NewWithT(t)
}

var (
	skippedFrames  = regexp.MustCompile(`testing\.tRunner|created by testing\.RunTests|lgomega\.panicFailHandler`)
	addressPattern = regexp.MustCompile(` \+0x[0-9a-f]+$`)
)

func panicFailHandler() omegatypes.GomegaFailHandler {
	return func(message string, callerSkip ...int) {
		// debug.Stack and this closure
		skip := 2
		if len(callerSkip) > 0 {
			skip += callerSkip[0]
		}
		stack := strings.TrimSpace(pruneStack(string(debug.Stack()), skip))
		panic(fmt.Sprintf("\n%s\n%s", stack, message))
	}
}

// pruneStack drops the goroutine header, the first skip frames and test
// runner frames. Each frame is a function line followed by a file line.
func pruneStack(fullStack string, skip int) string {
	lines := strings.Split(fullStack, "\n")
	if len(lines) > 1+2*skip {
		lines = lines[1+2*skip:]
	}

	pruned := make([]string, 0, len(lines))
	for i := 0; i+1 < len(lines); i += 2 {
		if skippedFrames.MatchString(lines[i]) {
			continue
		}
		pruned = append(pruned,
			addressPattern.ReplaceAllString(lines[i], ""),
			addressPattern.ReplaceAllString(lines[i+1], ""))
	}
	return strings.Join(pruned, "\n")
}
