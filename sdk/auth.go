package sdk

import "net/http"

// addAuthHeaders sets HTTP Basic credentials and the JSON content headers Prism expects.
func (c *Client) addAuthHeaders(req *http.Request) {
	req.SetBasicAuth(c.Username, c.password)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
}
