package client

import (
	"github.com/fivetwenty-io/flickr/internal/jsonx"
	"github.com/fivetwenty-io/flickr/pkg/flickr"
)

// optionalField binds an optional JSON key to a string field of a record.
type optionalField struct {
	key    string
	target *string
}

// readOptional fills every target from its key, leaving it empty when the key
// is absent or null.
func readOptional(node jsonx.Node, fields []optionalField) error {
	for _, field := range fields {
		value, _, err := node.OptionalString(field.key)
		if err != nil {
			return err
		}

		*field.target = value
	}

	return nil
}

// decodeFoundUser decodes the findByEmail/findByUsername payload:
// {"user": {"nsid": ..., "username": {"_content": ...}}}.
func decodeFoundUser(root jsonx.Node) (*flickr.User, error) {
	userNode, err := root.Object("user")
	if err != nil {
		return nil, err
	}

	idKey := "nsid"
	if !userNode.Has(idKey) && userNode.Has("id") {
		idKey = "id"
	}

	id, err := userNode.String(idKey)
	if err != nil {
		return nil, err
	}

	user := &flickr.User{ID: id}

	err = readOptional(userNode, []optionalField{
		{key: "username", target: &user.Username},
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// decodePerson decodes the getInfo payload rooted at "person".
func decodePerson(root jsonx.Node) (*flickr.User, error) {
	personNode, err := root.Object("person")
	if err != nil {
		return nil, err
	}

	user := &flickr.User{}

	if user.ID, err = personNode.String("nsid"); err != nil {
		return nil, err
	}

	if user.Pro, err = personNode.Flag("ispro"); err != nil {
		return nil, err
	}

	if user.IconFarm, err = personNode.String("iconfarm"); err != nil {
		return nil, err
	}

	if user.IconServer, err = personNode.String("iconserver"); err != nil {
		return nil, err
	}

	if user.PathAlias, err = personNode.String("path_alias"); err != nil {
		return nil, err
	}

	err = readOptional(personNode, []optionalField{
		{key: "username", target: &user.Username},
		{key: "realname", target: &user.RealName},
		{key: "location", target: &user.Location},
		{key: "mbox_sha1sum", target: &user.MboxSha1Sum},
		{key: "photosurl", target: &user.PhotosURL},
		{key: "profileurl", target: &user.ProfileURL},
		{key: "mobileurl", target: &user.MobileURL},
	})
	if err != nil {
		return nil, err
	}

	photosNode, err := personNode.Object("photos")
	if err != nil {
		return nil, err
	}

	err = readOptional(photosNode, []optionalField{
		{key: "firstdate", target: &user.PhotosFirstDate},
		{key: "firstdatetaken", target: &user.PhotosFirstDateTaken},
		{key: "count", target: &user.PhotosCount},
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// decodeGroups decodes the getPublicGroups payload: {"groups": {"group": [...]}}.
func decodeGroups(root jsonx.Node) ([]flickr.Group, error) {
	groupsNode, err := root.Object("groups")
	if err != nil {
		return nil, err
	}

	groupNodes, err := groupsNode.Array("group")
	if err != nil {
		return nil, err
	}

	groups := make([]flickr.Group, 0, len(groupNodes))

	for _, groupNode := range groupNodes {
		group, err := decodeGroup(groupNode)
		if err != nil {
			return nil, err
		}

		groups = append(groups, group)
	}

	return groups, nil
}

func decodeGroup(node jsonx.Node) (flickr.Group, error) {
	var (
		group flickr.Group
		err   error
	)

	if group.ID, err = node.String("nsid"); err != nil {
		return flickr.Group{}, err
	}

	if group.Name, err = node.String("name"); err != nil {
		return flickr.Group{}, err
	}

	if group.Admin, err = node.Flag("admin"); err != nil {
		return flickr.Group{}, err
	}

	if group.EighteenPlus, err = node.Flag("eighteenplus"); err != nil {
		return flickr.Group{}, err
	}

	if group.InvitationOnly, err = node.Flag("invitation_only"); err != nil {
		return flickr.Group{}, err
	}

	return group, nil
}

// decodeUploadStatus decodes the getUploadStatus payload rooted at "user".
func decodeUploadStatus(root jsonx.Node) (*flickr.User, error) {
	userNode, err := root.Object("user")
	if err != nil {
		return nil, err
	}

	user := &flickr.User{}

	if user.ID, err = userNode.String("id"); err != nil {
		return nil, err
	}

	if user.Pro, err = userNode.Flag("ispro"); err != nil {
		return nil, err
	}

	err = readOptional(userNode, []optionalField{
		{key: "username", target: &user.Username},
	})
	if err != nil {
		return nil, err
	}

	bandwidthNode, err := userNode.Object("bandwidth")
	if err != nil {
		return nil, err
	}

	if user.Bandwidth, err = decodeBandwidth(bandwidthNode); err != nil {
		return nil, err
	}

	filesizeNode, err := userNode.Object("filesize")
	if err != nil {
		return nil, err
	}

	if user.FilesizeMax, err = filesizeNode.String("max"); err != nil {
		return nil, err
	}

	return user, nil
}

func decodeBandwidth(node jsonx.Node) (*flickr.Bandwidth, error) {
	bandwidth := &flickr.Bandwidth{}

	integers := []struct {
		key    string
		target *int64
	}{
		{key: "max", target: &bandwidth.Max},
		{key: "used", target: &bandwidth.Used},
		{key: "maxbytes", target: &bandwidth.MaxBytes},
		{key: "usedbytes", target: &bandwidth.UsedBytes},
		{key: "remainingbytes", target: &bandwidth.RemainingBytes},
		{key: "maxkb", target: &bandwidth.MaxKB},
		{key: "usedkb", target: &bandwidth.UsedKB},
		{key: "remainingkb", target: &bandwidth.RemainingKB},
	}

	for _, field := range integers {
		value, err := node.Int64(field.key)
		if err != nil {
			return nil, err
		}

		*field.target = value
	}

	unlimited, err := node.Flag("unlimited")
	if err != nil {
		return nil, err
	}

	bandwidth.Unlimited = unlimited

	return bandwidth, nil
}

// decodeList decodes pagination metadata plus the array under itemsKey,
// preserving element order. An empty array yields an empty, non-nil slice.
func decodeList[T any](node jsonx.Node, itemsKey string, decodeItem func(jsonx.Node) (T, error)) (*flickr.ListResponse[T], error) {
	var (
		pagination flickr.Pagination
		err        error
	)

	if pagination.Page, err = node.Int("page"); err != nil {
		return nil, err
	}

	if pagination.Pages, err = node.Int("pages"); err != nil {
		return nil, err
	}

	if pagination.PerPage, err = node.Int("perpage"); err != nil {
		return nil, err
	}

	if pagination.Total, err = node.Int("total"); err != nil {
		return nil, err
	}

	itemNodes, err := node.Array(itemsKey)
	if err != nil {
		return nil, err
	}

	items := make([]T, 0, len(itemNodes))

	for _, itemNode := range itemNodes {
		item, err := decodeItem(itemNode)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return &flickr.ListResponse[T]{
		Pagination: pagination,
		Items:      items,
	}, nil
}

// decodePhotoList decodes {"photos": {"page": ..., "photo": [...]}}.
func decodePhotoList(root jsonx.Node) (*flickr.PhotoList, error) {
	photosNode, err := root.Object("photos")
	if err != nil {
		return nil, err
	}

	return decodeList(photosNode, "photo", decodePhoto)
}

func decodePhoto(node jsonx.Node) (flickr.Photo, error) {
	var (
		photo flickr.Photo
		err   error
	)

	required := []struct {
		key    string
		target *string
	}{
		{key: "id", target: &photo.ID},
		{key: "owner", target: &photo.Owner},
		{key: "secret", target: &photo.Secret},
		{key: "server", target: &photo.Server},
		{key: "farm", target: &photo.Farm},
		{key: "title", target: &photo.Title},
	}

	for _, field := range required {
		if *field.target, err = node.String(field.key); err != nil {
			return flickr.Photo{}, err
		}
	}

	if photo.IsPublic, err = node.OptionalFlag("ispublic"); err != nil {
		return flickr.Photo{}, err
	}

	if photo.IsFriend, err = node.OptionalFlag("isfriend"); err != nil {
		return flickr.Photo{}, err
	}

	if photo.IsFamily, err = node.OptionalFlag("isfamily"); err != nil {
		return flickr.Photo{}, err
	}

	err = readOptional(node, []optionalField{
		{key: "description", target: &photo.Description},
		{key: "license", target: &photo.License},
		{key: "dateupload", target: &photo.DateUpload},
		{key: "datetaken", target: &photo.DateTaken},
		{key: "ownername", target: &photo.OwnerName},
		{key: "iconserver", target: &photo.IconServer},
		{key: "iconfarm", target: &photo.IconFarm},
		{key: "originalformat", target: &photo.OriginalFormat},
		{key: "lastupdate", target: &photo.LastUpdate},
		{key: "latitude", target: &photo.Latitude},
		{key: "longitude", target: &photo.Longitude},
		{key: "accuracy", target: &photo.Accuracy},
		{key: "tags", target: &photo.Tags},
		{key: "machine_tags", target: &photo.MachineTags},
		{key: "views", target: &photo.Views},
		{key: "media", target: &photo.Media},
		{key: "pathalias", target: &photo.PathAlias},
		{key: "url_sq", target: &photo.URLSquare},
		{key: "url_t", target: &photo.URLThumbnail},
		{key: "url_s", target: &photo.URLSmall},
		{key: "url_m", target: &photo.URLMedium},
		{key: "url_o", target: &photo.URLOriginal},
	})
	if err != nil {
		return flickr.Photo{}, err
	}

	return photo, nil
}
