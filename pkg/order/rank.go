package order

// ComputeRanks sets each package's Rank to the number of other packages in
// pkgs that it uses. Previous ranks are discarded.
func ComputeRanks(pkgs []*Package) {
	for _, x := range pkgs {
		x.Rank = 0
		for _, y := range pkgs {
			if x != y && Uses(x, y) {
				x.Rank++
			}
		}
	}
}
