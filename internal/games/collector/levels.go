package collector

// BuiltinGridLevels returns the built-in maze levels.
// Layout alphabet: '#' wall, '.' open, 'S' start, 'E' exit opening.
// Gem and hazard designators are (row, col) cells; cells that land on
// walls are skipped at generation time.
func BuiltinGridLevels() []GridLevel {
	return []GridLevel{
		{
			Name: "First Steps",
			Layout: []string{
				"####################",
				"#S.................#",
				"#..................#",
				"#....##########....#",
				"#.............#....#",
				"#....#........#....E",
				"#....#.............E",
				"#....#........#....E",
				"#.............#....#",
				"#....##########....#",
				"#..................#",
				"####################",
			},
			Gems:    [][2]int{{2, 5}, {2, 14}, {6, 10}, {10, 5}, {10, 14}},
			Hazards: [][2]int{{4, 7}, {8, 7}},
		},
		{
			Name: "Corridors",
			Layout: []string{
				"####################",
				"#S........#........#",
				"#.........#........#",
				"#.....#...#...#....#",
				"#.....#...#...#....#",
				"#.....#.......#....E",
				"#.....#.......#....E",
				"#.....#...#...#....#",
				"#.....#...#...#....#",
				"#.........#........#",
				"#.........#........#",
				"####################",
			},
			Gems:    [][2]int{{2, 3}, {2, 15}, {3, 8}, {5, 10}, {9, 3}, {9, 15}},
			Hazards: [][2]int{{4, 8}, {7, 12}, {10, 12}},
		},
		{
			Name: "The Vault",
			Layout: []string{
				"####################",
				"#........#.........#",
				"#.######.#.######..#",
				"#.#....#.#.#....#..#",
				"#.#.##.#.#.#.##.#..#",
				"#.#.S..#...#....#..E",
				"#.#....#####....#..E",
				"#.#.##......##..#..#",
				"#.#....#.#.#....#..#",
				"#.######.#.######..#",
				"#........#.........#",
				"####################",
			},
			Gems:    [][2]int{{1, 4}, {1, 14}, {3, 5}, {8, 13}, {10, 8}, {10, 15}},
			Hazards: [][2]int{{2, 1}, {7, 9}, {9, 17}},
		},
		{
			Name: "Zigzag",
			Layout: []string{
				"####################",
				"#S...#.............#",
				"#....#....#####....#",
				"#....#........#....#",
				"#....#####....#....#",
				"#.............#....E",
				"#....#########.....E",
				"#....#.............E",
				"#....#....######...#",
				"#....#....#........#",
				"#..........#.......#",
				"####################",
			},
			Gems:    [][2]int{{2, 17}, {3, 8}, {5, 3}, {7, 10}, {9, 16}, {10, 2}},
			Hazards: [][2]int{{1, 10}, {5, 8}, {8, 2}, {10, 15}},
		},
		{
			Name: "Gauntlet",
			Layout: []string{
				"####################",
				"#S.#...#...#...#...#",
				"#..#.#.#.#.#.#.#.#.#",
				"#....#...#...#...#.#",
				"##.###.###.###.###.#",
				"#..................E",
				"#..................E",
				"#.###.###.###.###..#",
				"#.#...#...#...#....#",
				"#...#...#...#...#..#",
				"#.#...#...#...#....#",
				"####################",
			},
			Gems:    [][2]int{{1, 5}, {2, 2}, {3, 11}, {5, 5}, {6, 15}, {8, 4}, {9, 10}, {10, 17}},
			Hazards: [][2]int{{2, 10}, {5, 10}, {7, 18}, {9, 6}},
		},
	}
}
