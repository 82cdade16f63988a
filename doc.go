// Package emojifier classifies short sentences into emoji categories using
// averaged pretrained word embeddings and a single-layer softmax classifier
// trained with per-example stochastic gradient descent.
//
// A sentence is encoded as the arithmetic mean of its word vectors, scored
// through an affine transform plus softmax, and trained on cross-entropy
// loss with one gradient step per example. Embedding tables are a fixed
// external resource; see the embedding package for the GloVe-format loader.
package emojifier
