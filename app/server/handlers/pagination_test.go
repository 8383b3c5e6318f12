package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePageIndex(t *testing.T) {
	app, _, _ := newTestApp(t)

	assert.Equal(t, 0, app.parsePageIndex(""))
	assert.Equal(t, 0, app.parsePageIndex("0"))
	assert.Equal(t, 3, app.parsePageIndex("3"))
	assert.Equal(t, 0, app.parsePageIndex("-1"))
	assert.Equal(t, 0, app.parsePageIndex("abc"))
}
