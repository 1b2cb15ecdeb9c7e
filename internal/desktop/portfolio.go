package desktop

import (
	"github.com/etbcor/tomo/internal/footer"
	"github.com/etbcor/tomo/internal/state"
	"github.com/etbcor/tomo/internal/window"
)

// Portfolio builds /portfolio: about, education, skills and projects, with a
// file viewer for the project documents.
func Portfolio(env *Env) *Page {
	p := newPage("/portfolio", 0)
	p.Wallpaper = WallpaperCyberpunk
	files := state.NewCell(FileSource{})
	links := env.handlers(files)
	st := env.Store

	loading := newLoadingWindow(env, p.at(435, 204, 225, 202), LoadingHomePageLink)
	about := p.at(20, 20, 640, 112).new("about-win", "About Me",
		window.NewPage(st.Document("about", "about", links)),
		window.WithDecor(window.DecorScroll))
	education := p.at(20, 204, 380, 572).new("education-win", "Education",
		window.NewPage(st.Block("education")),
		window.WithDecor(window.DecorScroll))
	skills := p.at(695, 20, 550, 386).new("skills-win", "Skills",
		window.NewTabs("Technical",
			window.Panel{Label: "Technical", Body: st.Block("skills-technical")},
			window.Panel{Label: "Audio / Visual", Body: st.Block("skills-audio-visual")},
			window.Panel{Label: "Other", Body: st.Block("skills-other")},
		),
		window.WithDecor(window.DecorScroll))
	projects := p.at(435, 478, 810, 298).new("projects-win", "Projects",
		window.NewTabs("From CS Classes",
			window.Panel{Label: "From CS Classes", Body: st.LinkList("projects-classes", links)},
			window.Panel{Label: "Other Projects", Body: st.Block("projects-other")},
		),
		window.WithDecor(window.DecorScroll))
	fileSlot := p.at(1278, 20, 500, 756)
	fileSlot.hidden = nil
	file := newFileWindow(env, fileSlot, files)
	ad := newAdWindow(p.at(100, 600, 200, 100))

	p.add(loading, about, education, skills, projects, file, ad)
	p.Footer = footer.New(
		footer.Item{Label: `"Inspiration"`, Hidden: loading.HiddenCell()},
		footer.Item{Label: "About Me", Hidden: about.HiddenCell()},
		footer.Item{Label: "Education", Hidden: education.HiddenCell()},
		footer.Item{Label: "Projects", Hidden: projects.HiddenCell()},
		footer.Item{Label: "Skills", Hidden: skills.HiddenCell()},
	)
	return p
}
