package dictionary

// TrieNode is a node in the prefix tree. Terminal nodes carry the full word.
type TrieNode struct {
	children map[rune]*TrieNode
	isEnd    bool
	word     string
}

// Child returns the node reached by letter, or nil
func (n *TrieNode) Child(letter rune) *TrieNode {
	if n == nil {
		return nil
	}
	return n.children[letter]
}

// IsWord returns true if a dictionary word ends at this node
func (n *TrieNode) IsWord() bool {
	return n != nil && n.isEnd
}

// Word returns the word ending at this node, or "" for inner nodes
func (n *TrieNode) Word() string {
	if n == nil {
		return ""
	}
	return n.word
}

// Trie is a prefix tree over the dictionary, used to prune board walks
type Trie struct {
	root *TrieNode
	size int
}

// NewTrie creates an empty Trie
func NewTrie() *Trie {
	return &Trie{
		root: &TrieNode{children: make(map[rune]*TrieNode)},
	}
}

// Insert adds a word to the Trie
func (t *Trie) Insert(word string) {
	current := t.root
	for _, letter := range word {
		next := current.children[letter]
		if next == nil {
			next = &TrieNode{children: make(map[rune]*TrieNode)}
			current.children[letter] = next
		}
		current = next
	}
	if !current.isEnd {
		current.isEnd = true
		current.word = word
		t.size++
	}
}

// Root returns the node for the empty prefix
func (t *Trie) Root() *TrieNode {
	return t.root
}

// Contains returns true if word was inserted
func (t *Trie) Contains(word string) bool {
	return t.node(word).IsWord()
}

// HasPrefix returns true if any inserted word starts with prefix
func (t *Trie) HasPrefix(prefix string) bool {
	return t.node(prefix) != nil
}

// Len returns the number of distinct words
func (t *Trie) Len() int {
	return t.size
}

func (t *Trie) node(prefix string) *TrieNode {
	current := t.root
	for _, letter := range prefix {
		current = current.Child(letter)
		if current == nil {
			return nil
		}
	}
	return current
}
