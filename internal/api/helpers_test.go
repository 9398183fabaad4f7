package api

import (
	"net/url"
	"strconv"
)

func jsonID(id uint64) string { return strconv.FormatUint(id, 10) }

func urlQuery(s string) string { return url.QueryEscape(s) }
