package htmlutil

import (
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestGetAnchors(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`
		<div>
			<a class="r" href="/in/ana-souza?trk=x">  Ana
				Souza </a>
			<a class="r" href="https://www.linkedin.com/in/bruno-lima">Bruno Lima</a>
			<a class="r">no href</a>
			<a class="r" href="http://[::1">bad</a>
		</div>
	`))
	require.NoError(t, err)

	base, err := url.Parse("https://www.linkedin.com/search/results/people/?page=0")
	require.NoError(t, err)

	anchors := GetAnchors(base, doc.Find("a.r"))
	require.Len(t, anchors, 2)
	require.Equal(t, "Ana Souza", anchors[0].Name)
	require.Equal(t, "https://www.linkedin.com/in/ana-souza?trk=x", anchors[0].Href.String())
	require.Equal(t, "Bruno Lima", anchors[1].Name)
	require.Equal(t, "/in/bruno-lima", anchors[1].Href.Path)
}

func TestFirstText(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`
		<h1 class="t-24 t-bold">
			Carla   <span>Dias</span>
		</h1>
		<h1 class="t-24 t-bold">Second</h1>
	`))
	require.NoError(t, err)

	require.Equal(t, "Carla Dias", FirstText(doc.Find("h1.t-24.t-bold")))
	require.Equal(t, "", FirstText(doc.Find("h2")))
}
