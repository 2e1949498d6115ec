package orientation

import "github.com/katalvlaran/dyck/dyckpath"

// Example returns a valid acyclic orientation of the path (1,3,2,2,1,0):
//
//	     /\
//	    /\/\/\
//	 /\/\/\/\/\
//	/\/\/\/\/\/\
func Example() Orientation {
	ascents := []dyckpath.Box{
		{I: 1, J: 4},
		{I: 2, J: 3},
		{I: 2, J: 4},
		{I: 3, J: 4},
		{I: 3, J: 5},
		{I: 4, J: 5},
	}
	descents := []dyckpath.Box{
		{I: 0, J: 1},
		{I: 1, J: 2},
		{I: 1, J: 3},
	}

	return New(6, ascents, descents)
}
