package ascii

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/vovakirdan/axion/internal/core"
)

// Limits on script size. sim stops at --max-ticks long before either.
const (
	maxRepeat        = 100000
	maxScriptActions = 1 << 20
)

var scriptActions = map[rune]core.Action{
	'.': core.ActionNone,
	'U': core.ActionUp,
	'D': core.ActionDown,
	'L': core.ActionLeft,
	'R': core.ActionRight,
	'!': core.ActionConfirm,
	'r': core.ActionRestart,
	'n': core.ActionNextLevel,
	'p': core.ActionPause,
	'q': core.ActionQuit,
}

// ParseScript turns a script string into one action per frame.
//
//	U D L R  steer        .  no input
//	!        confirm      r  restart
//	n        next level   p  pause
//	q        quit
//
// A decimal count repeats the following symbol, so "3D2." equals "DDD..".
// Whitespace is ignored. Counts above 100000 are rejected.
func ParseScript(s string) ([]core.Action, error) {
	var out []core.Action
	count := ""
	for i, r := range s {
		switch {
		case unicode.IsSpace(r):
			continue
		case unicode.IsDigit(r):
			count += string(r)
			continue
		}

		a, ok := scriptActions[r]
		if !ok {
			return nil, fmt.Errorf("ascii: unknown script symbol %q at offset %d", r, i)
		}
		n := 1
		if count != "" {
			var err error
			if n, err = strconv.Atoi(count); err != nil {
				return nil, fmt.Errorf("ascii: bad repeat count %q: %w", count, err)
			}
			if n > maxRepeat {
				return nil, fmt.Errorf("ascii: repeat count %d exceeds %d", n, maxRepeat)
			}
			count = ""
		}
		if len(out)+n > maxScriptActions {
			return nil, fmt.Errorf("ascii: script longer than %d actions", maxScriptActions)
		}
		for range n {
			out = append(out, a)
		}
	}
	if count != "" {
		return nil, fmt.Errorf("ascii: repeat count %q without a symbol", count)
	}
	return out, nil
}
