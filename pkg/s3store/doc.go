// Package s3store keeps form snapshots as objects in an S3 bucket or any
// S3-compatible service.
//
//	store, err := s3store.New(ctx, s3store.Config{
//		Bucket: "forms",
//		Region: "us-east-1",
//		Prefix: "snapshots/",
//	})
//
// Each form is stored as a single object named Prefix + form name.
package s3store
