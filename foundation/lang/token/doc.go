// Package token defines the lexical vocabulary of the inside language:
// token kinds, the Token value produced by the lexer, and the classifier
// that maps raw text to a kind.
//
// Package: token
// Title: Token Kinds and Classifier
// Description: Kinds are a closed enumeration grouped into numeric bands
//              (dictionary, keywords, punctuation, whitespace). The bands
//              are an internal detail; compare kinds by name, not by range.
// Author: dipakw
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
package token
