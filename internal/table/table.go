// Package table holds the fetched record set for one page and derives
// paginated views from it. Pagination is purely client-side over the full
// set; no server-side paging protocol exists.
package table

// Table is the view model for one record list.
//
// The record slice is replaced wholesale on every successful fetch, never
// patched incrementally; the single exception is RemoveWhere, backing the
// optimistic delete path.
type Table[T any] struct {
	records  []T
	pageIdx  int
	pageSize int

	seq       uint64 // последний выданный токен запроса
	committed uint64 // токен последнего принятого ответа
}

// New создаёт таблицу с заданным размером страницы.
func New[T any](pageSize int) *Table[T] {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Table[T]{pageSize: pageSize}
}

// SetRecords replaces the record set and resets to the first page.
func (t *Table[T]) SetRecords(recs []T) {
	t.records = recs
	t.pageIdx = 0
}

// Begin issues a request token. Ответ, пришедший со старым токеном,
// отбрасывается: два запроса могут лететь одновременно, и медленный
// старый не должен затирать данные свежего.
func (t *Table[T]) Begin() uint64 {
	t.seq++
	return t.seq
}

// Complete applies a fetched record set if token is still the latest
// issued one. Reports whether the set was accepted.
func (t *Table[T]) Complete(token uint64, recs []T) bool {
	if token < t.seq || token <= t.committed {
		return false
	}
	t.committed = token
	t.SetRecords(recs)
	return true
}

// Len returns the full record count.
func (t *Table[T]) Len() int { return len(t.records) }

// Records returns the full fetched set in server order.
func (t *Table[T]) Records() []T { return t.records }

// PageIndex — текущая страница, с нуля.
func (t *Table[T]) PageIndex() int { return t.pageIdx }

// PageSize returns the configured rows-per-page.
func (t *Table[T]) PageSize() int { return t.pageSize }

// PageCount = ceil(len/pageSize); ноль записей — одна пустая страница.
func (t *Table[T]) PageCount() int {
	if len(t.records) == 0 {
		return 1
	}
	return (len(t.records) + t.pageSize - 1) / t.pageSize
}

// NextPage advances one page; a no-op at the last page.
func (t *Table[T]) NextPage() {
	if t.pageIdx+1 < t.PageCount() {
		t.pageIdx++
	}
}

// PrevPage steps back one page; a no-op at the first page.
func (t *Table[T]) PrevPage() {
	if t.pageIdx > 0 {
		t.pageIdx--
	}
}

// Visible returns the slice of records for the current page.
func (t *Table[T]) Visible() []T {
	lo := t.pageIdx * t.pageSize
	if lo >= len(t.records) {
		return nil
	}
	hi := lo + t.pageSize
	if hi > len(t.records) {
		hi = len(t.records)
	}
	return t.records[lo:hi]
}

// RemoveWhere drops every record matching pred, keeping order. Страница
// поджимается, чтобы инвариант pageIdx*pageSize < len сохранился.
func (t *Table[T]) RemoveWhere(pred func(T) bool) int {
	kept := t.records[:0]
	removed := 0
	for _, r := range t.records {
		if pred(r) {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	t.records = kept
	if t.pageIdx >= t.PageCount() {
		t.pageIdx = t.PageCount() - 1
	}
	return removed
}
