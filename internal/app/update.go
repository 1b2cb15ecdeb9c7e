package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/etbcor/tomo/internal/analytics"
	"github.com/etbcor/tomo/internal/config"
	"github.com/etbcor/tomo/internal/desktop"
)

// FrameMsg redraws animated content such as loading spinners.
type FrameMsg time.Time

// StatusMsg refreshes the footer status from the shared sampler.
type StatusMsg time.Time

// ContentChangedMsg reports a reload of the content store.
type ContentChangedMsg struct{ Err error }

// BeaconMsg reports the result of a page-view beacon.
type BeaconMsg struct {
	Path string
	Err  error
}

// NavigateMsg replaces the page.
type NavigateMsg struct{ Path string }

// InputHandler handles key and mouse messages for a Desk.
// The input package registers one so app does not import it.
type InputHandler func(msg tea.Msg, d *Desk) (tea.Model, tea.Cmd)

var inputHandler InputHandler

// SetInputHandler registers the input handler. It must be called before the
// first Update.
func SetInputHandler(handler InputHandler) {
	inputHandler = handler
}

// FrameCmd schedules the next animation frame.
func FrameCmd() tea.Cmd {
	return tea.Tick(config.LoadingFrameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

func (d *Desk) statusCmd() tea.Cmd {
	if d.sampler == nil || !config.ShowStatus {
		return nil
	}
	return tea.Tick(config.StatusInterval, func(t time.Time) tea.Msg {
		return StatusMsg(t)
	})
}

func (d *Desk) beaconCmd() tea.Cmd {
	if !d.beacon.Enabled() {
		return nil
	}
	b, ctx := d.beacon, d.ctx
	view := analytics.View{Path: d.Page.Path, Title: desktop.Title(d.Page.Path), Session: d.SessionID}
	return func() tea.Msg {
		return BeaconMsg{Path: view.Path, Err: b.Send(ctx, view)}
	}
}

// checkContent reports a reload of the shared store made since the last
// check. The process runs a single watcher; every desk polls the result.
func (d *Desk) checkContent() {
	if d.store == nil {
		return
	}
	seq, err := d.store.Changes()
	if seq == d.contentSeq {
		return
	}
	d.contentSeq = seq
	d.notifyContent(err)
}

func (d *Desk) notifyContent(err error) {
	if err != nil {
		d.ShowNotification(NotifyError, "content reload failed: "+err.Error(), "")
		return
	}
	d.ShowNotification(NotifySuccess, "content reloaded", "")
}

// Init starts the frame and status ticks and sends the beacon for the
// first page.
func (d *Desk) Init() tea.Cmd {
	d.updateStatus()
	return tea.Batch(
		FrameCmd(),
		d.statusCmd(),
		d.beaconCmd(),
	)
}

// Update handles a message.
func (d *Desk) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.Width = msg.Width
		d.Height = msg.Height
		return d, nil

	case FrameMsg:
		d.CleanupNotifications(time.Time(msg))
		d.checkContent()
		return d, FrameCmd()

	case StatusMsg:
		d.updateStatus()
		return d, d.statusCmd()

	case ContentChangedMsg:
		d.notifyContent(msg.Err)
		return d, nil

	case BeaconMsg:
		if msg.Err != nil {
			logger.Warn("beacon failed", "path", msg.Path, "err", msg.Err)
		}
		return d, nil

	case NavigateMsg:
		return d, d.Navigate(msg.Path)

	case tea.KeyPressMsg, tea.MouseClickMsg, tea.MouseMotionMsg,
		tea.MouseReleaseMsg, tea.MouseWheelMsg:
		if inputHandler == nil {
			return d, nil
		}
		model, cmd := inputHandler(msg, d)
		return model, tea.Batch(cmd, d.ApplyNavigation())
	}
	return d, nil
}
