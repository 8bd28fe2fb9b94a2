// Package pipe defines the six pipe orientations that can occupy a grid cell
// and the four cardinal directions they connect.
//
// What:
//
//   - Direction is a bit flag (Up, Down, Left, Right); a Direction value with
//     several bits set is a direction set.
//   - PipeType is a closed enumeration of six variants, each connecting exactly
//     two directions:
//
//     Vertical      '|'  {Up, Down}
//     Horizontal    '-'  {Left, Right}
//     UpRightBend   'L'  {Up, Right}
//     UpLeftBend    'J'  {Up, Left}
//     DownLeftBend  '7'  {Down, Left}
//     DownRightBend 'F'  {Down, Right}
//
//   - FromRune and FromDirections are the two inverse lookups used by the grid
//     builder (symbol → type) and the start-orientation resolver
//     (direction pair → type).
//
// The mapping is fixed; nothing in this package holds state.
package pipe
