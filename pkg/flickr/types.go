package flickr

// User represents a Flickr account as returned by the flickr.people.* methods.
// Which fields are populated depends on the method that produced it.
type User struct {
	ID                   string     `json:"id"                                yaml:"id"`
	Username             string     `json:"username,omitempty"                yaml:"username,omitempty"`
	RealName             string     `json:"real_name,omitempty"               yaml:"real_name,omitempty"`
	Pro                  bool       `json:"pro"                               yaml:"pro"`
	IconFarm             string     `json:"icon_farm,omitempty"               yaml:"icon_farm,omitempty"`
	IconServer           string     `json:"icon_server,omitempty"             yaml:"icon_server,omitempty"`
	Location             string     `json:"location,omitempty"                yaml:"location,omitempty"`
	PathAlias            string     `json:"path_alias,omitempty"              yaml:"path_alias,omitempty"`
	MboxSha1Sum          string     `json:"mbox_sha1sum,omitempty"            yaml:"mbox_sha1sum,omitempty"`
	PhotosURL            string     `json:"photos_url,omitempty"              yaml:"photos_url,omitempty"`
	ProfileURL           string     `json:"profile_url,omitempty"             yaml:"profile_url,omitempty"`
	MobileURL            string     `json:"mobile_url,omitempty"              yaml:"mobile_url,omitempty"`
	PhotosFirstDate      string     `json:"photos_first_date,omitempty"       yaml:"photos_first_date,omitempty"`
	PhotosFirstDateTaken string     `json:"photos_first_date_taken,omitempty" yaml:"photos_first_date_taken,omitempty"`
	PhotosCount          string     `json:"photos_count,omitempty"            yaml:"photos_count,omitempty"`
	Bandwidth            *Bandwidth `json:"bandwidth,omitempty"               yaml:"bandwidth,omitempty"`
	FilesizeMax          string     `json:"filesize_max,omitempty"            yaml:"filesize_max,omitempty"`
}

// Group is the subset of group information returned by flickr.people.getPublicGroups.
type Group struct {
	ID             string `json:"id"              yaml:"id"`
	Name           string `json:"name"            yaml:"name"`
	Admin          bool   `json:"admin"           yaml:"admin"`
	EighteenPlus   bool   `json:"eighteen_plus"   yaml:"eighteen_plus"`
	InvitationOnly bool   `json:"invitation_only" yaml:"invitation_only"`
}

// Bandwidth describes the upload allowance of the calling user.
type Bandwidth struct {
	Max            int64 `json:"max"             yaml:"max"`
	Used           int64 `json:"used"            yaml:"used"`
	MaxBytes       int64 `json:"max_bytes"       yaml:"max_bytes"`
	UsedBytes      int64 `json:"used_bytes"      yaml:"used_bytes"`
	RemainingBytes int64 `json:"remaining_bytes" yaml:"remaining_bytes"`
	MaxKB          int64 `json:"max_kb"          yaml:"max_kb"`
	UsedKB         int64 `json:"used_kb"         yaml:"used_kb"`
	RemainingKB    int64 `json:"remaining_kb"    yaml:"remaining_kb"`
	Unlimited      bool  `json:"unlimited"       yaml:"unlimited"`
}

// Photo represents a photo entry of a photo list. Fields below Title are only
// present when the matching extra was requested.
type Photo struct {
	ID       string `json:"id"        yaml:"id"`
	Owner    string `json:"owner"     yaml:"owner"`
	Secret   string `json:"secret"    yaml:"secret"`
	Server   string `json:"server"    yaml:"server"`
	Farm     string `json:"farm"      yaml:"farm"`
	Title    string `json:"title"     yaml:"title"`
	IsPublic bool   `json:"is_public" yaml:"is_public"`
	IsFriend bool   `json:"is_friend" yaml:"is_friend"`
	IsFamily bool   `json:"is_family" yaml:"is_family"`

	Description    string `json:"description,omitempty"     yaml:"description,omitempty"`
	License        string `json:"license,omitempty"         yaml:"license,omitempty"`
	DateUpload     string `json:"date_upload,omitempty"     yaml:"date_upload,omitempty"`
	DateTaken      string `json:"date_taken,omitempty"      yaml:"date_taken,omitempty"`
	OwnerName      string `json:"owner_name,omitempty"      yaml:"owner_name,omitempty"`
	IconServer     string `json:"icon_server,omitempty"     yaml:"icon_server,omitempty"`
	IconFarm       string `json:"icon_farm,omitempty"       yaml:"icon_farm,omitempty"`
	OriginalFormat string `json:"original_format,omitempty" yaml:"original_format,omitempty"`
	LastUpdate     string `json:"last_update,omitempty"     yaml:"last_update,omitempty"`
	Latitude       string `json:"latitude,omitempty"        yaml:"latitude,omitempty"`
	Longitude      string `json:"longitude,omitempty"       yaml:"longitude,omitempty"`
	Accuracy       string `json:"accuracy,omitempty"        yaml:"accuracy,omitempty"`
	Tags           string `json:"tags,omitempty"            yaml:"tags,omitempty"`
	MachineTags    string `json:"machine_tags,omitempty"    yaml:"machine_tags,omitempty"`
	Views          string `json:"views,omitempty"           yaml:"views,omitempty"`
	Media          string `json:"media,omitempty"           yaml:"media,omitempty"`
	PathAlias      string `json:"path_alias,omitempty"      yaml:"path_alias,omitempty"`
	URLSquare      string `json:"url_sq,omitempty"          yaml:"url_sq,omitempty"`
	URLThumbnail   string `json:"url_t,omitempty"           yaml:"url_t,omitempty"`
	URLSmall       string `json:"url_s,omitempty"           yaml:"url_s,omitempty"`
	URLMedium      string `json:"url_m,omitempty"           yaml:"url_m,omitempty"`
	URLOriginal    string `json:"url_o,omitempty"           yaml:"url_o,omitempty"`
}

// Pagination represents the pagination metadata of a windowed list response.
type Pagination struct {
	Page    int `json:"page"     yaml:"page"`
	Pages   int `json:"pages"    yaml:"pages"`
	PerPage int `json:"per_page" yaml:"per_page"`
	Total   int `json:"total"    yaml:"total"`
}

// ListResponse represents a paginated list response.
type ListResponse[T any] struct {
	Pagination Pagination `json:"pagination" yaml:"pagination"`
	Items      []T        `json:"items"      yaml:"items"`
}

// HasMore reports whether pages after the current one exist.
func (l *ListResponse[T]) HasMore() bool {
	return l.Pagination.Page < l.Pagination.Pages
}

// PhotoList represents a paginated list of Photo entries.
type PhotoList = ListResponse[Photo]
