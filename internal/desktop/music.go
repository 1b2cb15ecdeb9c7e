package desktop

import (
	"github.com/etbcor/tomo/internal/footer"
	"github.com/etbcor/tomo/internal/window"
)

// Music builds /music: the playlists and a placeholder for original music.
func Music(env *Env) *Page {
	p := newPage("/music", 0)
	p.Wallpaper = WallpaperCyberpunk
	links := env.handlers(nil)
	st := env.Store

	loading := newLoadingWindow(env, p.at(20, 20, 255, 255), LoadingHomePageLink)
	mine := newLinkWindow(env, p.at(20, 347, 255, 255), linkWindow{
		id: "my-music-win", title: "My Music (coming soon)", label: "My Music",
		target: "/music", icon: iconNote,
	})
	playlists := p.at(310, 20, 440, 582).new("spotify-win", "My Public Spotify Playlists",
		window.NewTabs("Main",
			window.Panel{Label: "Main", Body: st.Document("music", "playlists-main", links)},
			window.Panel{Label: "Mood", Body: st.LinkList("playlists-mood", links)},
			window.Panel{Label: "Genres", Body: st.LinkList("playlists-genres", links)},
		),
		window.WithDecor(window.DecorScroll|window.DecorRainbow))
	john := newJohnWindow(env, p.at(20, 674, 730, 90))

	p.add(loading, mine, playlists, john)
	p.Footer = footer.New(
		footer.Item{Label: `"Inspiration"`, Hidden: loading.HiddenCell()},
		footer.Item{Label: "My Music", Hidden: mine.HiddenCell()},
		footer.Item{Label: "Playlists", Hidden: playlists.HiddenCell()},
		footer.Item{Label: "Johnvertisement", Hidden: john.HiddenCell()},
	)
	return p
}
