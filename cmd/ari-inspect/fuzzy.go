// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// fuzzySlab is shared scratch space for fzf's matcher, reused across
// calls to avoid per-keystroke allocation while the filter box is
// active.
var fuzzySlab = util.MakeSlab(100*1024, 2048)

// fuzzyMatch reports whether pattern fuzzy-matches text, and a score
// usable for ranking (higher is a better match). An empty pattern
// matches everything with score 0.
func fuzzyMatch(text, pattern string) (score int, ok bool) {
	if pattern == "" {
		return 0, true
	}
	chars := util.RunesToChars([]rune(text))
	result, _ := algo.FuzzyMatchV2(false, true, true, &chars, []rune(pattern), false, fuzzySlab)
	if result.Start < 0 {
		return 0, false
	}
	return result.Score, true
}
