package state

// IsChainValid reports whether every block after genesis links to the block
// before it, has a hash matching its contents and holds only valid
// transactions. Nothing is repaired.
func (s *State) IsChainValid() bool {
	return s.ValidateChain() == nil
}

// ValidateChain is IsChainValid returning the first problem found.
func (s *State) ValidateChain() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := 1; i < len(s.chain); i++ {
		if err := s.chain[i].ValidateBlock(s.chain[i-1], s.verifier, nil); err != nil {
			s.evHandler("state: ValidateChain: blk[%d]: INVALID: %s", i, err)
			return err
		}
	}

	return nil
}
