package viewer

// Rect is a cell's on-screen bounding box in terminal cells, relative to the
// top-left of the grid area.
type Rect struct {
	X, Y, W, H int
}

// OverlayState is the visibility of the selected-cell highlight.
type OverlayState int

const (
	OverlayHidden OverlayState = iota
	OverlayVisible
)

// BoundsFunc answers the host grid's geometry query: the current on-screen
// rectangle of the cell at (row with this row number, column index), or
// ok=false when that cell is outside the visible viewport.
type BoundsFunc func(rowNumber string, col int) (Rect, bool)

// OverlayController keeps the selected-cell highlight glued to the cell it
// belongs to. It owns the overlay's visibility and rectangle; the host feeds
// it selection, scroll, resize and re-render events and supplies geometry
// through a BoundsFunc. The rectangle is recomputed from scratch on every
// event; screen geometry has changed, so a cached box is never reused.
type OverlayController struct {
	bounds BoundsFunc

	state OverlayState
	rect  Rect

	// weak selection reference
	rowNumber string
	col       int
}

// NewOverlayController starts Hidden with no selection.
func NewOverlayController(bounds BoundsFunc) *OverlayController {
	return &OverlayController{bounds: bounds, col: -1}
}

// State returns the current visibility.
func (o *OverlayController) State() OverlayState { return o.state }

// Rect returns the overlay rectangle; ok is false while Hidden.
func (o *OverlayController) Rect() (Rect, bool) {
	return o.rect, o.state == OverlayVisible
}

// Selection returns the weak selection reference (row number, column index).
// The column is -1 when no cell is selected.
func (o *OverlayController) Selection() (string, int) {
	return o.rowNumber, o.col
}

// SelectionChanged records a new selected cell and repositions.
func (o *OverlayController) SelectionChanged(rowNumber string, col int) {
	o.rowNumber = rowNumber
	o.col = col
	o.reposition()
}

// SelectionCleared drops the selection and hides the overlay.
func (o *OverlayController) SelectionCleared() {
	o.rowNumber = ""
	o.col = -1
	o.state = OverlayHidden
}

// Scrolled repositions after any scroll. A row that left the viewport hides
// the overlay; the selection itself survives, so scrolling back and
// repositioning shows it again.
func (o *OverlayController) Scrolled() { o.reposition() }

// Resized repositions after the host window changed size.
func (o *OverlayController) Resized() { o.reposition() }

// Rerendered handles a view rebuild from filter, sort or reload.
// stillPresent says whether the selected row number survived into the new
// view; a stale reference clears the selection rather than pointing at a row
// that is gone.
func (o *OverlayController) Rerendered(stillPresent bool) {
	if !stillPresent {
		o.SelectionCleared()
		return
	}
	o.reposition()
}

// SheetLoaded resets everything; no selection or column reference survives a
// sheet reload.
func (o *OverlayController) SheetLoaded() {
	o.SelectionCleared()
}

func (o *OverlayController) reposition() {
	if o.rowNumber == "" || o.col < 0 {
		o.state = OverlayHidden
		return
	}
	rect, ok := o.bounds(o.rowNumber, o.col)
	if !ok {
		o.state = OverlayHidden
		return
	}
	o.rect = rect
	o.state = OverlayVisible
}
