// Package flickrclient provides the primary entry point for constructing a
// Flickr API client that implements the flickr.Client interface.
//
// It layers configuration, HTTP transport and OAuth 1.0a request signing on
// top of the interfaces and types defined in the flickr package. Most
// applications should import flickrclient to build a client, then use the
// returned flickr.Client to reach the people methods through People().
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/flickr/pkg/flickr"
//	  "github.com/fivetwenty-io/flickr/pkg/flickrclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Public methods only need an API key.
//	  cli, err := flickrclient.NewWithAPIKey(ctx, "your-api-key")
//	  if err != nil { log.Fatal(err) }
//
//	  user, err := cli.People().FindByUsername(ctx, "bees")
//	  if err != nil { log.Fatal(err) }
//
//	  photos, err := cli.People().GetPublicPhotos(ctx, user.ID, flickr.DefaultPhotosParams(50, 1))
//	  if err != nil { log.Fatal(err) }
//	  _ = photos
//
//	  // Authenticated methods need OAuth 1.0a credentials.
//	  cli, err = flickrclient.New(ctx, &flickr.Config{
//	    APIKey:           "your-api-key",
//	    SharedSecret:     "your-shared-secret",
//	    OAuthToken:       "user-token",
//	    OAuthTokenSecret: "user-token-secret",
//	  })
//	  if err != nil { log.Fatal(err) }
//	}
//
// # Endpoint
//
// When Config.Endpoint is empty the public REST endpoint
// https://api.flickr.com/services/rest/ is used. An endpoint without a scheme
// gets https:// prepended.
package flickrclient
