package routes

import "fmt"

// Route is one user-supplied track plus the metadata we display it with.
type Route struct {
	Id    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"` // CSS-style, e.g. "#ff0000"
	Track Track  `json:"track"`
}

func (r Route)String() string {
	name := r.Name
	if name == "" { name = r.Id }
	if name == "" { name = "(unnamed)" }
	return fmt.Sprintf("%s: %s", name, r.Track)
}

func (r Route)Sanitized() Route {
	r.Track = r.Track.Sanitized()
	return r
}
