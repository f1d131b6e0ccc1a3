package testutil

// SeedHCL is the reference org chart used across integration tests:
//
//	1 Mark Zuckerberg
//	├── 2 Sarah Donald
//	│   └── 4 Cassandra Reynolds
//	│       ├── 5 Mary Blue
//	│       └── 6 Bob Saget
//	│           └── 7 Tina Teff
//	│               └── 8 Will Turner
//	└── 3 Tyler Simpson
const SeedHCL = `
employee "Mark Zuckerberg" {
  id = 1
  employee "Sarah Donald" {
    id = 2
    employee "Cassandra Reynolds" {
      id = 4
      employee "Mary Blue" {
        id = 5
      }
      employee "Bob Saget" {
        id = 6
        employee "Tina Teff" {
          id = 7
          employee "Will Turner" {
            id = 8
          }
        }
      }
    }
  }
  employee "Tyler Simpson" {
    id = 3
  }
}
`
