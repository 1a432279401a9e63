package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// 状态迁移表
// | 当前     | like切换 | dislike切换 |
// | NONE     | LIKED    | DISLIKED    |
// | LIKED    | NONE     | DISLIKED    |
// | DISLIKED | LIKED    | NONE        |
func TestNextReactionPolarity(t *testing.T) {
	cases := []struct {
		name    string
		current int64
		toggled int64
		want    int64
	}{
		{"none_like", 0, 1, 1},
		{"none_dislike", 0, -1, -1},
		{"liked_like", 1, 1, 0},
		{"liked_dislike", 1, -1, -1},
		{"disliked_like", -1, 1, 1},
		{"disliked_dislike", -1, -1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NextReactionPolarity(tc.current, tc.toggled))
		})
	}
}

func TestNextReactionPolarityDoubleToggle(t *testing.T) {
	// 连续两次同向切换回到NONE
	state := NextReactionPolarity(0, 1)
	state = NextReactionPolarity(state, 1)
	assert.Equal(t, int64(0), state)

	state = NextReactionPolarity(0, -1)
	state = NextReactionPolarity(state, -1)
	assert.Equal(t, int64(0), state)
}
