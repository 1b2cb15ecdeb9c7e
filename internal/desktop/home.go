package desktop

import (
	"github.com/etbcor/tomo/internal/footer"
	"github.com/etbcor/tomo/internal/state"
	"github.com/etbcor/tomo/internal/window"
)

// homeCell is the position and visibility of one home page window. Nested
// home pages share these cells with the page that contains them.
type homeCell struct {
	pos    *state.Cell[window.Pos]
	hidden *state.Cell[bool]
}

func newHomeCell(p window.Pos) homeCell {
	return homeCell{pos: state.NewCell(p), hidden: state.NewCell(false)}
}

// position binds the cell for a page at depth. Nested pages draw below the
// meta window's banner.
func (c homeCell) position(depth int) window.Position {
	pos := window.Shared(c.pos)
	if depth > 0 {
		pos = pos.Rebind()
	}
	return pos
}

type homeCells struct {
	loading, portfolio, music, tp, webring, meta, ad, john homeCell
}

func newHomeCells() homeCells {
	return homeCells{
		loading:   newHomeCell(cells(20, 20)),
		portfolio: newHomeCell(cells(280, 20)),
		music:     newHomeCell(cells(20, 262)),
		tp:        newHomeCell(cells(280, 309)),
		webring:   newHomeCell(cells(20, 559)),
		meta:      newHomeCell(cells(485, 192)),
		ad:        newHomeCell(cells(485, 20)),
		john:      newHomeCell(cells(20, 701)),
	}
}

// Home builds the home page.
func Home(env *Env) *Page {
	return buildHome(env, 0, newHomeCells())
}

// buildHome builds the home page at nesting depth. Only the outermost page
// has a footer and a stacking counter.
func buildHome(env *Env, depth int, c homeCells) *Page {
	p := newPage("/", depth)
	at := func(hc homeCell, w, h int) slot {
		return slot{pos: hc.position(depth), size: size(w, h), hidden: hc.hidden, z: p.Z}
	}

	p.add(
		newLoadingWindow(env, at(c.loading, 225, 170), LoadingDefault),
		newLinkWindow(env, at(c.portfolio, 170, 220), linkWindow{
			id: "portfolio-link-win", title: "Portfolio", target: "/portfolio",
			icon: iconFile, decor: window.DecorDiag,
		}),
		newLinkWindow(env, at(c.music, 225, 225), linkWindow{
			id: "music-link-win", title: "Music", target: "/music", icon: iconNote,
		}),
		newLinkWindow(env, at(c.tp, 170, 178), linkWindow{
			id: "tp-link-win", title: "toki pona", target: "/tp",
			icon: iconItan, decor: window.DecorDiagTP,
		}),
		newWebringWindow(env, at(c.webring, 430, 70), WebringBucket),
		newAdWindow(at(c.ad, 200, 100)),
		newJohnWindow(env, at(c.john, 665, 82)),
	)
	p.add(newMeta(env, p, depth+1, c, p.Z).Window())

	if depth == 0 {
		p.Wallpaper = WallpaperCyberpunk
		p.Footer = footer.New(
			footer.Item{Label: `"Inspiration"`, Hidden: c.loading.hidden},
			footer.Item{Label: "Portfolio", Hidden: c.portfolio.hidden},
			footer.Item{Label: "Music", Hidden: c.music.hidden},
			footer.Item{Label: "toki pona", Hidden: c.tp.hidden},
			footer.Item{Label: "Webring", Hidden: c.webring.hidden},
			footer.Item{Label: "Meta", Hidden: c.meta.hidden},
			footer.Item{Label: "Johnvertisement", Hidden: c.john.hidden},
		)
	}
	return p
}
