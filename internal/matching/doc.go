// Package matching decides which masterlist songs also belong to the south branch.
//
// # Keys
//
// Two keys link a masterlist row to the south-branch reference list:
//
//  1. [NormalizeName] : lowercase title with punctuation removed and whitespace collapsed
//  2. [ExtractVideoID] : bare YouTube video id taken from a watch or youtu.be URL
//
// The reference side may hold full URLs, so its ids go through [ExtractVideoID].
// The masterlist stores bare ids and is compared verbatim.
//
// # Matching
//
// [LoadReference] builds a [ReferenceSet] from the reference table and a [Matcher]
// labels each master row "Central, South" when either key is in the set, "Central" otherwise.
package matching
