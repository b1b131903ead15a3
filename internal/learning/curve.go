package learning

// DefaultMaxLevel is the number of levels a record passes through before graduating.
const DefaultMaxLevel = 20

// LevelUpPath returns the wait in days for each of maxLevel levels.
// The waits follow the differences of a scaled-down Fibonacci sequence, never less than a day.
func LevelUpPath(maxLevel int) Path {
	if maxLevel <= 0 {
		return Path{}
	}

	path := make(Path, maxLevel)
	prev, cur := 0, 1 // fib(n), fib(n+1)
	for n := 0; n < maxLevel; n++ {
		days := shrink(cur) - shrink(prev)
		if days < 1 {
			days = 1
		}
		path[n] = days
		prev, cur = cur, prev+cur
	}
	return path
}

func shrink(x int) int {
	return x * 2 / 9
}
