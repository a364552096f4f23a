// Package mongo stores form snapshots in a MongoDB collection using the
// official v2 driver.
//
//	coll, err := mongo.NewCollection(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	store := mongo.NewStore(coll)
//
// Each form is one document keyed by its name (_id) holding the encoded
// snapshot in data and the write time in updated_at.
package mongo
