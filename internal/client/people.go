package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/flickr/pkg/flickr"
)

// PeopleClient implements flickr.PeopleClient.
type PeopleClient struct {
	transport Transport
}

// NewPeopleClient creates a new people client.
func NewPeopleClient(transport Transport) *PeopleClient {
	return &PeopleClient{
		transport: transport,
	}
}

// FindByEmail implements flickr.PeopleClient.FindByEmail.
func (c *PeopleClient) FindByEmail(ctx context.Context, email string) (*flickr.User, error) {
	params := flickr.NewParameters(flickr.MethodFindByEmail).
		Add(flickr.ParamFindEmail, email)

	user, err := invoke(ctx, c.transport, params, decodeFoundUser)
	if err != nil {
		return nil, fmt.Errorf("finding user by email: %w", err)
	}

	return user, nil
}

// FindByUsername implements flickr.PeopleClient.FindByUsername.
func (c *PeopleClient) FindByUsername(ctx context.Context, username string) (*flickr.User, error) {
	params := flickr.NewParameters(flickr.MethodFindByUsername).
		Add(flickr.ParamUsername, username)

	user, err := invoke(ctx, c.transport, params, decodeFoundUser)
	if err != nil {
		return nil, fmt.Errorf("finding user by username: %w", err)
	}

	return user, nil
}

// GetInfo implements flickr.PeopleClient.GetInfo.
func (c *PeopleClient) GetInfo(ctx context.Context, userID string) (*flickr.User, error) {
	params := flickr.NewParameters(flickr.MethodGetInfo).
		Add(flickr.ParamUserID, userID)

	user, err := invoke(ctx, c.transport, params, decodePerson)
	if err != nil {
		return nil, fmt.Errorf("getting user info: %w", err)
	}

	return user, nil
}

// GetPublicGroups implements flickr.PeopleClient.GetPublicGroups.
func (c *PeopleClient) GetPublicGroups(ctx context.Context, userID string) ([]flickr.Group, error) {
	params := flickr.NewParameters(flickr.MethodGetPublicGroups).
		Add(flickr.ParamUserID, userID)

	groups, err := invoke(ctx, c.transport, params, decodeGroups)
	if err != nil {
		return nil, fmt.Errorf("getting public groups: %w", err)
	}

	return groups, nil
}

// GetPublicPhotos implements flickr.PeopleClient.GetPublicPhotos.
func (c *PeopleClient) GetPublicPhotos(ctx context.Context, userID string, photosParams *flickr.PhotosParams) (*flickr.PhotoList, error) {
	params := flickr.NewParameters(flickr.MethodGetPublicPhotos).
		Add(flickr.ParamUserID, userID)
	params = photosParams.Apply(params)

	photos, err := invoke(ctx, c.transport, params, decodePhotoList)
	if err != nil {
		return nil, fmt.Errorf("getting public photos: %w", err)
	}

	return photos, nil
}

// GetPhotos implements flickr.PeopleClient.GetPhotos. The call must be
// signed, so the client needs OAuth credentials.
func (c *PeopleClient) GetPhotos(ctx context.Context, userID string, photosParams *flickr.PhotosParams) (*flickr.PhotoList, error) {
	params := flickr.NewParameters(flickr.MethodGetPhotos).
		Add(flickr.ParamUserID, userID)
	params = photosParams.Apply(params)

	photos, err := invoke(ctx, c.transport, params, decodePhotoList)
	if err != nil {
		return nil, fmt.Errorf("getting photos: %w", err)
	}

	return photos, nil
}

// GetUploadStatus implements flickr.PeopleClient.GetUploadStatus.
func (c *PeopleClient) GetUploadStatus(ctx context.Context) (*flickr.User, error) {
	params := flickr.NewParameters(flickr.MethodGetUploadStatus)

	user, err := invoke(ctx, c.transport, params, decodeUploadStatus)
	if err != nil {
		return nil, fmt.Errorf("getting upload status: %w", err)
	}

	return user, nil
}
