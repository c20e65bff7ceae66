package handlers

import (
	"net/url"
	"strconv"

	"ibdesk/internal/table"
)

// applyPage подводит таблицу к запрошенной странице через NextPage:
// выход за последнюю страницу невозможен по контракту таблицы.
func applyPage[T any](tbl *table.Table[T], page int) {
	for i := 0; i < page; i++ {
		tbl.NextPage()
	}
}

// pageURL собирает ссылку пагинации, сохраняя текущие фильтры.
func pageURL(path string, filters url.Values, page int) string {
	q := url.Values{}
	for k, vs := range filters {
		if len(vs) > 0 && vs[0] != "" {
			q.Set(k, vs[0])
		}
	}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if enc := q.Encode(); enc != "" {
		return path + "?" + enc
	}
	return path
}

func atoiOr(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return def
	}
	return n
}

// Pager — общие поля пагинации для страниц-таблиц.
type Pager struct {
	Total     int
	Showing   int
	PageIndex int // 1-based, для отображения
	PageCount int
	HasPrev   bool
	HasNext   bool
	PrevURL   string
	NextURL   string
}

func newPager[T any](tbl *table.Table[T], path string, filters url.Values) Pager {
	idx := tbl.PageIndex()
	return Pager{
		Total:     tbl.Len(),
		Showing:   len(tbl.Visible()),
		PageIndex: idx + 1,
		PageCount: tbl.PageCount(),
		HasPrev:   idx > 0,
		HasNext:   idx+1 < tbl.PageCount(),
		PrevURL:   pageURL(path, filters, idx-1),
		NextURL:   pageURL(path, filters, idx+1),
	}
}
