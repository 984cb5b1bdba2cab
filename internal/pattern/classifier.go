// Package pattern implements the deterministic recognition tier: a fixed set
// of compiled regular expressions evaluated in priority order.
package pattern

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/codeboxhq/codebox/internal/model"
)

// DefaultCouriers is the built-in courier/platform token list anchoring the
// pickup-code rule.
var DefaultCouriers = []string{"菜鸟", "丰巢", "顺丰", "中通", "圆通", "申通", "韵达", "极兔"}

var (
	verificationRegex = regexp.MustCompile(`(?i)(验证码|校验码|动态码|code)[^0-9]*([0-9]{4,6})`)
	pureDigitsRegex   = regexp.MustCompile(`^\s*([0-9]{4,6})\s*$`)
)

// Classifier matches text against the recognition rules. It is immutable
// after construction and safe for concurrent use.
type Classifier struct {
	pickupRegex *regexp.Regexp
}

// NewClassifier builds a classifier using the default courier list.
func NewClassifier() *Classifier {
	c, err := NewClassifierWithCouriers(DefaultCouriers)
	if err != nil {
		// The default list always compiles.
		panic(err)
	}
	return c
}

// NewClassifierWithCouriers builds a classifier whose pickup rule is anchored
// on the given courier tokens.
func NewClassifierWithCouriers(couriers []string) (*Classifier, error) {
	if len(couriers) == 0 {
		return nil, fmt.Errorf("at least one courier token is required")
	}

	quoted := make([]string, len(couriers))
	for i, courier := range couriers {
		quoted[i] = regexp.QuoteMeta(courier)
	}

	pickup, err := regexp.Compile(`(` + strings.Join(quoted, "|") + `)[^0-9a-zA-Z]*([a-zA-Z0-9-]{4,10})`)
	if err != nil {
		return nil, fmt.Errorf("failed to compile pickup pattern: %w", err)
	}

	return &Classifier{pickupRegex: pickup}, nil
}

// Classify runs the rules in fixed priority order and returns the first match,
// or nil when no rule matches. Callers treat nil as "other" with the raw text
// as the code.
//
// Rule order matters: a text containing both a courier token and a
// verification keyword is always classified as a pickup code.
func (c *Classifier) Classify(text string) *model.RecognitionResult {
	if m := c.pickupRegex.FindStringSubmatch(text); m != nil {
		return &model.RecognitionResult{
			Category: model.CategoryPickup,
			Platform: m[1],
			Code:     m[2],
		}
	}

	if m := verificationRegex.FindStringSubmatch(text); m != nil {
		return &model.RecognitionResult{
			Category: model.CategoryVerification,
			Code:     m[2],
		}
	}

	if m := pureDigitsRegex.FindStringSubmatch(text); m != nil {
		return &model.RecognitionResult{
			Category: model.CategoryVerification,
			Code:     m[1],
		}
	}

	return nil
}
