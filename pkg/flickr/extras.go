package flickr

// Extra photo fields understood by the photo list methods.
const (
	ExtraDescription    = "description"
	ExtraLicense        = "license"
	ExtraDateUpload     = "date_upload"
	ExtraDateTaken      = "date_taken"
	ExtraOwnerName      = "owner_name"
	ExtraIconServer     = "icon_server"
	ExtraOriginalFormat = "original_format"
	ExtraLastUpdate     = "last_update"
	ExtraGeo            = "geo"
	ExtraTags           = "tags"
	ExtraMachineTags    = "machine_tags"
	ExtraViews          = "views"
	ExtraMedia          = "media"
	ExtraPathAlias      = "path_alias"
	ExtraURLSquare      = "url_sq"
	ExtraURLThumbnail   = "url_t"
	ExtraURLSmall       = "url_s"
	ExtraURLMedium      = "url_m"
	ExtraURLOriginal    = "url_o"
)

// MinExtras returns the extras requested when the caller does not choose any:
// enough to render and date a photo without a second lookup.
func MinExtras() []string {
	return []string{
		ExtraOriginalFormat,
		ExtraLicense,
		ExtraOwnerName,
		ExtraDateUpload,
		ExtraDateTaken,
		ExtraIconServer,
		ExtraLastUpdate,
		ExtraMedia,
	}
}

// AllExtras returns every extra known to this package.
func AllExtras() []string {
	return []string{
		ExtraDescription,
		ExtraLicense,
		ExtraDateUpload,
		ExtraDateTaken,
		ExtraOwnerName,
		ExtraIconServer,
		ExtraOriginalFormat,
		ExtraLastUpdate,
		ExtraGeo,
		ExtraTags,
		ExtraMachineTags,
		ExtraViews,
		ExtraMedia,
		ExtraPathAlias,
		ExtraURLSquare,
		ExtraURLThumbnail,
		ExtraURLSmall,
		ExtraURLMedium,
		ExtraURLOriginal,
	}
}
