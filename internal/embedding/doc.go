// Package embedding turns dog photos into fixed-length vectors for
// similarity search.
//
// The [Provider] interface hides the model behind a single EmbedImage call.
// Two implementations exist:
//
//   - the inference client, which posts the image to an OpenAI-compatible
//     embeddings endpoint and returns the 512-dimension vector the deployed
//     CLIP model produces;
//   - the placeholder provider, used when no endpoint is configured. It
//     returns a constant zero vector so the rest of the system stays
//     operable offline. The degraded state is logged at construction and on
//     every call; it is an explicit condition, never a silent default.
//
// Setting EMBEDDING_REQUIRED=true disables the placeholder: construction in
// degraded mode then fails with ErrUnavailable instead.
package embedding
