package jsonkeep

// Package jsonkeep provides:
//
// - Lossless-ish JSON round-trips: Decode infers the indentation unit,
//   line-ending style, and trailing-newline presence of the source
//   text; Encode replays them, so programmatic edits do not introduce
//   unrelated formatting diffs.
// - A non-intrusive association: the inferred formatting lives in a
//   side table keyed by value identity, never on the value itself, and
//   never extends the value's lifetime.
// - File glue via ReadFile/WriteFile that remembers where a document
//   came from and can write it back without an explicit path.
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations under internal/.
// - Place the CLI under cmd/jsonkeep.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  v, err := jsonkeep.ReadFile(ctx, "package.json")
//  v.(map[string]any)["version"] = "2.0.0"
//  err = jsonkeep.WriteFile(ctx, v, "")
//
