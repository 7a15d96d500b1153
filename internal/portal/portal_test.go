package portal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_ShareTheSameShape(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range All() {
		assert.False(t, seen[c.Slug], "duplicate slug %s", c.Slug)
		seen[c.Slug] = true

		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.RoleLabel)
		require.NotEmpty(t, c.Pages, c.Slug)

		dash, ok := c.Page("")
		assert.True(t, ok, "%s needs a dashboard", c.Slug)
		assert.NotEmpty(t, dash.Title)

		nav := c.Nav()
		require.Len(t, nav, len(c.Pages))
		assert.Equal(t, "Dashboard", nav[0].Label)
		assert.Equal(t, c.Root(), nav[0].Href)
	}
	assert.Len(t, seen, 4)
}

func TestBySlug(t *testing.T) {
	c, ok := BySlug("accountant-portal")
	require.True(t, ok)
	assert.Equal(t, "Accountant Portal", c.Name)

	_, ok = BySlug("student-portal")
	assert.False(t, ok)
}

func TestForPath(t *testing.T) {
	c, ok := ForPath("/academic-board/meetings")
	require.True(t, ok)
	assert.Equal(t, "academic-board", c.Slug)

	_, ok = ForPath("/academic-boards")
	assert.False(t, ok)

	_, ok = ForPath("/events/1")
	assert.False(t, ok)
}

func TestActive(t *testing.T) {
	c := Teacher()
	nav := c.Nav()
	dashboard, classes := nav[0], nav[1]

	assert.True(t, c.Active(dashboard, "/teacher-portal"))
	assert.True(t, c.Active(dashboard, "/teacher-portal/"))
	assert.False(t, c.Active(dashboard, "/teacher-portal/classes"))

	assert.True(t, c.Active(classes, "/teacher-portal/classes"))
	assert.True(t, c.Active(classes, "/teacher-portal/classes/algebra"))
	assert.False(t, c.Active(classes, "/teacher-portal/classesx"))
}

func TestHref(t *testing.T) {
	c := Admin()
	assert.Equal(t, "/admin-portal", c.Href(""))
	assert.Equal(t, "/admin-portal/users", c.Href("users"))
}
