// Package freq provides rune-frequency utilities over UTF-8 strings:
// multiset counting, anagram checks, anagram grouping, and first-unique
// lookup.
//
// 🚀 What is freq?
//
//	Every operation in this package reduces a string to the multiset of
//	its runes and asks a question about that multiset.  Typical uses:
//	  • Anagram detection & dictionary grouping
//	  • First non-repeating character (streams, parsers, puzzles)
//	  • Histogram building for custom text analysis
//
// ✨ Key features:
//   - Count: one-pass rune histogram, map[rune]int
//   - IsAnagram: exact multiset equality, case- and space-sensitive
//   - Group: partitions words into anagram classes, order-stable
//   - FirstUnique: first rune with multiplicity 1, rune-aware
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlseq/freq"
//
//	freq.IsAnagram("cat", "tac")          // true
//	freq.FirstUnique("naveena")           // 'v', true
//	freq.Group([]string{"eat", "tea", "tan"})
//	// → [["eat" "tea"] ["tan"]]
//
// Performance:
//
//   - Time:   O(n) per string (O(n·log n) per word for Group keys)
//   - Memory: O(k) where k is the number of distinct runes
//
// All functions treat input as a sequence of runes, not bytes, so
// multi-byte characters count as single units.
package freq
