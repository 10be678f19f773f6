// Package flickr defines the types, interfaces and errors of a client for the
// Flickr REST API's flickr.people.* methods.
//
// Construct a client with the flickrclient package and use the returned
// flickr.Client to reach the resource clients:
//
//	cli, err := flickrclient.NewWithAPIKey(ctx, "your-api-key")
//	if err != nil { log.Fatal(err) }
//
//	user, err := cli.People().FindByUsername(ctx, "bees")
//	if err != nil { log.Fatal(err) }
//
//	photos, err := cli.People().GetPublicPhotos(ctx, user.ID, flickr.DefaultPhotosParams(50, 1))
//
// # Errors
//
// Every method returns either a fully decoded result or exactly one of:
//   - *TransportError: the request could not be signed or delivered, or the
//     HTTP status was not 2xx.
//   - *ServiceError: Flickr answered with stat "fail"; Code and Message are
//     taken verbatim from the response.
//   - *DecodeError: the success payload lacked a required field or had an
//     unexpected type. Path names the offending field.
//
// Use errors.As or the Is* helpers to tell them apart. Partially decoded
// results are never returned.
//
// # Field population
//
// User records are populated according to the method that produced them:
// FindByEmail and FindByUsername fill only ID and Username, GetInfo fills the
// profile fields, and GetUploadStatus fills ID, Username, Pro, Bandwidth and
// FilesizeMax.
package flickr
