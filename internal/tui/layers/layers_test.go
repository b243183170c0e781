package layers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateCenteredLayer(t *testing.T) {
	assert.Nil(t, CreateCenteredLayer("", 80, 24))
	assert.NotNil(t, CreateCenteredLayer("X", 5, 3))
}

func TestCenterOffset(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		screenWidth  int
		screenHeight int
		wantX, wantY int
	}{
		{name: "centered", content: "abcd\nefgh", screenWidth: 10, screenHeight: 6, wantX: 3, wantY: 2},
		{name: "odd remainder rounds down", content: "abc", screenWidth: 10, screenHeight: 4, wantX: 3, wantY: 1},
		{name: "wider than screen", content: "0123456789abc", screenWidth: 10, screenHeight: 1, wantX: 0, wantY: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := CenterOffset(tt.content, tt.screenWidth, tt.screenHeight)
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)
		})
	}
}

func TestModalWidth(t *testing.T) {
	tests := []struct {
		screen int
		want   int
	}{
		{screen: 30, want: 30},
		{screen: 60, want: 40},
		{screen: 90, want: 60},
		{screen: 200, want: 90},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ModalWidth(tt.screen), "screen width %d", tt.screen)
	}
}
