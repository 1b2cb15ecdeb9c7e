package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/etbcor/tomo/internal/config"
	"github.com/etbcor/tomo/internal/pool"
	"github.com/etbcor/tomo/internal/window"
)

// Layers returns the page and the overlays above it.
func (d *Desk) Layers() []*lipgloss.Layer {
	layers := d.Page.Layers(d.Width, d.Height, d.FocusedWindow())
	layers = append(layers, d.notificationLayers()...)

	if d.Launcher.Open {
		box := d.Launcher.Render(min(48, max(d.Width-4, 24)))
		x := max((d.Width-lipgloss.Width(box))/2, 0)
		y := max((d.Height-lipgloss.Height(box))/4, 0)
		layers = d.overlay(layers, box, x, y, config.ZIndexLauncher, "launcher")
	}
	if d.ShowHelp {
		box := d.RenderHelp()
		x := max((d.Width-lipgloss.Width(box))/2, 0)
		y := max((d.Height-lipgloss.Height(box))/2, 0)
		layers = d.overlay(layers, box, x, y, config.ZIndexHelp, "help")
	}
	return layers
}

// overlay appends box clipped to the terminal.
func (d *Desk) overlay(layers []*lipgloss.Layer, box string, x, y, z int, id string) []*lipgloss.Layer {
	s, x, y := window.Clip(box, x, y, d.Width, d.Height)
	if s == "" {
		return layers
	}
	return append(layers, lipgloss.NewLayer(s).X(x).Y(y).Z(z).ID(id))
}

// Render draws the desktop into a string of the terminal's size.
func (d *Desk) Render() string {
	if d.Width <= 0 || d.Height <= 0 {
		return ""
	}
	layersPtr := pool.GetLayerSlice()
	defer pool.PutLayerSlice(layersPtr)
	layers := append(*layersPtr, d.Layers()...)

	canvas := lipgloss.NewCanvas()
	canvas.AddLayers(layers...)
	return canvas.Render()
}

// View renders the desktop.
func (d *Desk) View() tea.View {
	var view tea.View
	view.SetContent(d.Render())
	view.AltScreen = true
	view.MouseMode = tea.MouseModeAllMotion
	return view
}
