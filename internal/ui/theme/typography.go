//go:build cgo

package theme

type Typography struct {
	Header int32
	Body   int32
	Small  int32
}

var Type = Typography{
	Header: 26,
	Body:   20,
	Small:  16,
}
