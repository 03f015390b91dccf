package langs

import (
	"regexp"
	"strings"

	"github.com/hollowcheck/hollowcheck/pkg/model"
)

// commentPattern strips // and # line comments and /* */ block
// comments from a body's text so stub classification can inspect what
// executable code, if any, remains. Heuristic over raw text rather
// than the parse tree — acceptable per the analyzer's "no semantic
// analysis" scope; string/char literals containing comment-like
// sequences are a known, accepted false-negative source.
var commentPattern = regexp.MustCompile(`//[^\n]*|#[^\n]*|/\*[\s\S]*?\*/`)

var panicOnlyPattern = regexp.MustCompile(
	`^(?:panic\(.*\)|panic!\(.*\)|todo!\(.*\)|unimplemented!\(.*\)|throw\s+.*|raise(?:\s+NotImplementedError\(.*\))?(?:\s+.*)?|fatalError\(.*\)|preconditionFailure\(.*\)|\?\?\?|abort\(\))\s*;?\s*$`,
)

var nullReturnPattern = regexp.MustCompile(
	`^return\s+(?:nil|null|undefined|None|NULL|nullptr)\s*;?\s*$|^None\s*$`,
)

var passOnlyPattern = regexp.MustCompile(`^pass\s*$|^\(\s*\)\s*$`)

// classifyStub applies a four-pattern stub classification, first
// match wins.
func classifyStub(bodyText string) (bool, model.StubClass) {
	stripped := commentPattern.ReplaceAllString(bodyText, "")
	code := strings.TrimSpace(stripped)
	if strings.HasPrefix(code, "{") && strings.HasSuffix(code, "}") {
		// Brace-delimited block bodies: classify what is inside.
		code = strings.TrimSpace(code[1 : len(code)-1])
	}

	if code == "" || passOnlyPattern.MatchString(code) {
		// No executable statement. A hollow TODO comment upgrades
		// this from empty to todo_only; any other comment (or none)
		// leaves it empty.
		if hasHollowTodoComment(bodyText) {
			return true, model.StubTodoOnly
		}
		return true, model.StubEmpty
	}

	if panicOnlyPattern.MatchString(code) {
		return true, model.StubPanicOnly
	}

	if nullReturnPattern.MatchString(code) {
		return true, model.StubNullReturn
	}

	return false, model.StubNone
}

func hasHollowTodoComment(bodyText string) bool {
	for _, m := range commentPattern.FindAllString(bodyText, -1) {
		if _, hollow := classifyTodoText(m); hollow {
			return true
		}
	}
	return false
}
