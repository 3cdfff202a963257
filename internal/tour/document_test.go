package tour

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<!DOCTYPE html>
<html><body>
<nav><a href="#contact">Contact</a></nav>
<section id="home"><h1>Hi</h1></section>
<div data-section="skills"><p>Go</p></div>
<div class="card projects-section wide"></div>
<section id="contact"><form></form></section>
</body></html>`

func TestDocument_Find(t *testing.T) {
	doc, err := ParseDocument(strings.NewReader(page))
	require.NoError(t, err)
	ctx := context.Background()

	home, ok, err := doc.Find(ctx, Selector{Kind: ByID, Value: "home"})
	require.NoError(t, err)
	require.True(t, ok)

	skills, ok, _ := doc.Find(ctx, Selector{Kind: ByDataSection, Value: "skills"})
	require.True(t, ok)
	assert.Greater(t, skills.Top, home.Top)

	_, ok, _ = doc.Find(ctx, Selector{Kind: ByClass, Value: "projects-section"})
	assert.True(t, ok)

	_, ok, _ = doc.Find(ctx, Selector{Kind: ByClass, Value: "projects"})
	assert.False(t, ok, "class match is by whole token")

	viaAnchor, ok, _ := doc.Find(ctx, Selector{Kind: ByAnchor, Value: "contact"})
	require.True(t, ok)
	direct, _, _ := doc.Find(ctx, Selector{Kind: ByID, Value: "contact"})
	assert.Equal(t, direct.Top, viaAnchor.Top)

	_, ok, _ = doc.Find(ctx, Selector{Kind: ByID, Value: "nope"})
	assert.False(t, ok)
}

func TestDocument_NavigateEveryFallback(t *testing.T) {
	doc, err := ParseDocument(strings.NewReader(page))
	require.NoError(t, err)
	nav := NewNavigator(doc, fastTiming(), nil)

	for _, section := range []string{"home", "skills", "projects", "contact"} {
		res := nav.Navigate(context.Background(), section)
		assert.True(t, res.Converged, section)
		y, _ := doc.ScrollY(context.Background())
		assert.Equal(t, res.Target, y)
	}

	res := nav.Navigate(context.Background(), "volunteering")
	assert.False(t, res.Reached)
	assert.ErrorIs(t, res.Warning, ErrSectionNotFound)
}
