package config

import "time"

// Desktop geometry. All window positions and sizes are in terminal cells.
const (
	// StackOverflowLimit is the deepest nesting level a Meta window will
	// build. A Meta at this depth shows the overflow page instead.
	StackOverflowLimit = 8

	// ChromeCols and ChromeRows are the cells a window frame adds around its
	// content: the left and right borders, the title bar and the bottom border.
	ChromeCols = 2
	ChromeRows = 2

	// TabBarRows is the height of the tab strip of a tabbed window.
	TabBarRows = 1

	// MetaOffsetRows is the banner row a nested page reserves above its
	// windows.
	MetaOffsetRows = 1

	// FooterHeight is the height of the footer bar at the bottom of a page.
	FooterHeight = 1

	// PxPerCol and PxPerRow convert the layout sizes of the web site the
	// pages are modeled on into cells.
	PxPerCol = 7
	PxPerRow = 18

	DefaultNudgeStep = 1
	MaxNudgeStep     = 10
)

// Timing.
const (
	NormalFPS            = 60
	StatusInterval       = 2 * time.Second
	NotificationDuration = 3 * time.Second
	LoadingFrameInterval = 250 * time.Millisecond
)

// Layer z-indices above the page windows.
const (
	ZIndexWallpaper    = -1
	ZIndexFooter       = 1 << 20
	ZIndexNotification = ZIndexFooter + 1
	ZIndexLauncher     = ZIndexFooter + 2
	ZIndexHelp         = ZIndexFooter + 3
)

// Runtime settings, populated from the user config by Apply.
var (
	BorderStyle   = "rounded"
	NudgeStep     = DefaultNudgeStep
	ShowStatus    = true
	ShowWallpaper = true
	UseASCIIOnly  = false
)
