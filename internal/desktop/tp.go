package desktop

import (
	"github.com/etbcor/tomo/internal/footer"
	"github.com/etbcor/tomo/internal/state"
	"github.com/etbcor/tomo/internal/window"
)

// TokiPona builds /tp, the toki pona hub.
func TokiPona(env *Env) *Page {
	p := newPage("/tp", 0)
	p.Wallpaper = WallpaperCyberpunk
	files := state.NewCell(FileSource{})
	links := env.handlers(files)
	st := env.Store

	loading := newLoadingWindow(env, p.at(20, 20, 255, 255), LoadingTP)
	nanpa := newLinkWindow(env, p.at(310, 20, 300, 255), linkWindow{
		id: "nasin-nanpa-link-win", title: "nasin nanpa", label: "nasin sitelen tan anpa nanpa",
		target: "/tp/nasin_nanpa", icon: iconGrid, decor: window.DecorDiagTP,
	})
	kalama := newLinkWindow(env, p.at(20, 347, 255, 255), linkWindow{
		id: "kalama-sin-link-win", title: "kalama sin", label: "sitelen toki pi kalama sin",
		target: "/tp/kalama_sin", icon: iconNote, decor: window.DecorDiagTP,
	})
	ante := p.at(310, 347, 300, 255).new("ijo-ante-win", "ijo ante",
		window.NewTabs("ijo mi",
			window.Panel{Label: "ijo mi", Body: st.LinkList("ijo-ante-mi", links)},
			window.Panel{Label: "jan", Body: st.LinkList("ijo-ante-jan", links)},
			window.Panel{Label: "ijo ante", Body: st.LinkList("ijo-ante-ante", links)},
		),
		window.WithDecor(window.DecorScroll))
	fileSlot := p.at(645, 20, 700, 744)
	fileSlot.hidden = nil
	file := newFileWindow(env, fileSlot, files)
	ring := newWebringWindow(env, p.at(20, 674, 590, 70), WebringSikePona)

	p.add(loading, nanpa, kalama, ante, file, ring)
	p.Footer = footer.New(
		footer.Item{Label: "o pona", Hidden: loading.HiddenCell()},
		footer.Item{Label: "nasin nanpa", Hidden: nanpa.HiddenCell()},
		footer.Item{Label: "kalama sin", Hidden: kalama.HiddenCell()},
		footer.Item{Label: "ijo ante", Hidden: ante.HiddenCell()},
		footer.Item{Label: "sike pona", Hidden: ring.HiddenCell()},
	)
	return p
}

// KalamaSin builds /tp/kalama_sin, the transcripts of the kalama sin
// podcast.
func KalamaSin(env *Env) *Page {
	p := newPage("/tp/kalama_sin", 0)
	p.Wallpaper = WallpaperCyberpunk
	files := state.NewCell(FileSource{})
	links := env.handlers(files)

	loading := newLoadingWindow(env, p.at(20, 20, 255, 255), LoadingTP)
	redCircle := newLinkWindow(env, p.at(20, 347, 255, 255), linkWindow{
		id: "red-circle-link-win", title: "lon ilo RedCircle",
		target: "https://redcircle.com/shows/kalama-sin", icon: iconNote, external: true,
	})
	transcripts := p.at(310, 20, 440, 582).new("kalama-sin-win", "sitelen toki pi kalama sin",
		window.NewPage(env.Store.Document("kalama-sin", "kalama-sin", links)),
		window.WithDecor(window.DecorScroll))
	john := newJohnWindow(env, p.at(20, 674, 730, 90))
	fileSlot := p.at(782, 20, 600, 744)
	fileSlot.hidden = nil
	file := newFileWindow(env, fileSlot, files)

	p.add(loading, redCircle, transcripts, john, file)
	p.Footer = footer.New(
		footer.Item{Label: `"Inspiration"`, Hidden: loading.HiddenCell()},
		footer.Item{Label: "lon ilo RedCircle", Hidden: redCircle.HiddenCell()},
		footer.Item{Label: "sitelen toki pi kalama sin", Hidden: transcripts.HiddenCell()},
		footer.Item{Label: "Johnvertisement", Hidden: john.HiddenCell()},
	)
	return p
}

// NasinNanpa builds /tp/nasin_nanpa, the page of the nasin nanpa font.
func NasinNanpa(env *Env) *Page {
	p := newPage("/tp/nasin_nanpa", 0)
	p.Wallpaper = WallpaperCyberpunk
	links := env.handlers(nil)
	st := env.Store

	back := newLinkWindow(env, p.at(20, 20, 255, 255), linkWindow{
		id: "tp-link-win", title: "lipu pi toki pona", target: "/tp",
		icon: iconItan, decor: window.DecorDiagTP,
	})
	github := newLinkWindow(env, p.at(310, 20, 620, 255), linkWindow{
		id: "nasin-nanpa-github-win", title: "lon ilo GitHub",
		target: "https://github.com/ETBCOR/nasin-nanpa", icon: iconGrid, external: true,
	})
	font := p.at(20, 347, 910, 255).new("nasin-nanpa-win", "nasin sitelen tan anpa nanpa",
		window.NewTabs("Font Versions",
			window.Panel{Label: "Font Versions", Body: st.Block("nasin-nanpa-versions")},
			window.Panel{Label: "Glyph Combos", Body: st.Block("nasin-nanpa-combos")},
			window.Panel{Label: "Alternate Glyphs", Body: st.Block("nasin-nanpa-alternates")},
			window.Panel{Label: "Ligatures", Body: st.Block("nasin-nanpa-ligatures")},
			window.Panel{Label: "AHK Scripts", Body: st.LinkList("nasin-nanpa-ahk", links)},
		),
		window.WithDecor(window.DecorScroll))
	ring := newWebringWindow(env, p.at(20, 674, 720, 70), WebringSikePona)
	loading := newLoadingWindow(env, p.at(775, 674, 155, 70), LoadingTP)

	p.add(back, github, font, ring, loading)
	p.Footer = footer.New(
		footer.Item{Label: "lipu pi toki pona", Hidden: back.HiddenCell()},
		footer.Item{Label: "lon ilo Github", Hidden: github.HiddenCell()},
		footer.Item{Label: "nasin nanpa", Hidden: font.HiddenCell()},
		footer.Item{Label: "sike pona", Hidden: ring.HiddenCell()},
		footer.Item{Label: "o pona", Hidden: loading.HiddenCell()},
	)
	return p
}
