package topple

type intSlicePool struct {
	pool [][]int
}

func (p *intSlicePool) alloc() []int {
	if p == nil {
		return nil
	}

	if len(p.pool) > 0 {
		m := len(p.pool)
		next := p.pool[m-1]
		p.pool = p.pool[:m-1]
		return next
	}

	return nil
}

func (p *intSlicePool) free(s []int) {
	if p != nil && cap(s) > 0 {
		p.pool = append(p.pool, s[:0])
	}
}
