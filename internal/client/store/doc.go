// Package store owns the application's durable document.
//
// A Store holds the decoded models.StoreState in memory and mirrors every
// change to a kv.Repository under a single key, as one JSON object. Every
// mutating method writes the whole document before it returns; the in-memory
// copy is replaced only after the write succeeds, so a failed save leaves the
// previous state in place.
//
// Besides the document, the Store keeps small remembered scalars (the
// session token and the pending-verification email) under their own keys
// via Remember, Recall and Forget.
//
// Reads hand out copies; callers cannot mutate the owned state.
package store
