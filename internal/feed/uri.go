package feed

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// param is one query-string entry. Parameters are assembled as an ordered
// list rather than a map so request URIs are deterministic.
type param struct {
	key   string
	value string
}

// encodeQuery joins parameters and then URL-decodes the result. Decoding the
// assembled query is an intentional, if unusual, choice inherited from the
// deployed feed servers; changing it breaks wire compatibility.
func encodeQuery(params []param) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, p.key+"="+p.value)
	}
	joined := strings.Join(parts, "&")

	decoded, err := url.QueryUnescape(joined)
	if err != nil {
		// Undecodable queries go out as assembled; the server rejects
		// anything it cannot parse.
		return joined
	}
	return decoded
}

func (c *Client) endpoint(path string, params []param) string {
	uri := c.baseURL + path + "." + string(c.format)
	if q := encodeQuery(params); q != "" {
		uri += "?" + q
	}
	return uri
}

// listParams builds the projection, paging, and parent-selector parameters
// for a filtered listing. The parent id travels under a variable key name
// (feedId, briefId) chosen by the caller.
func listParams(sel Selector, state string, offset, limit int, properties, fields []string) []param {
	var params []param
	if len(properties) > 0 {
		params = append(params, param{"properties", strings.Join(properties, ",")})
	}
	if len(fields) > 0 {
		params = append(params, param{"fields", strings.Join(fields, ",")})
	}
	params = append(params,
		param{"offset", strconv.Itoa(offset)},
		param{"limit", strconv.Itoa(limit)},
		param{sel.Key, strconv.FormatInt(sel.ID, 10)},
		param{"state", state},
	)
	return params
}

// Selector addresses the parent collection a listing is filtered by.
type Selector struct {
	Key string
	ID  int64
}

func ForFeed(id int64) Selector {
	return Selector{Key: "feedId", ID: id}
}

func ForBrief(id int64) Selector {
	return Selector{Key: "briefId", ID: id}
}

func articlePath(id int64) string {
	return fmt.Sprintf("articles/%d", id)
}
